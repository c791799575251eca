package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/fixtures"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/modules/dashboard/services"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/shared/utils"
)

func main() {
	var table, formatName, out string
	var seed int64

	flag.StringVar(&table, "table", services.TableCohorts, "Table to export (cohorts, funnel, features)")
	flag.StringVar(&formatName, "format", string(export.FormatExcel), "Export format (excel, pdf, csv)")
	flag.StringVar(&out, "out", "", "Output file (default <table>.<ext> in the current directory)")
	flag.Int64Var(&seed, "seed", 0, "Fixture seed (default FIXTURE_SEED)")
	flag.Parse()

	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.LogLevel, false)

	if seed == 0 {
		seed = cfg.FixtureSeed
	}

	format, err := export.ParseFormat(formatName)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid -format (use: excel, pdf, csv)")
	}

	exporter := export.NewService()
	svc := services.NewExportService(fixtures.New(seed), exporter, nil)

	if !knownTable(svc.Tables(), table) {
		log.Fatal().
			Str("table", table).
			Str("tables", strings.Join(svc.Tables(), ", ")).
			Msg("Unknown -table")
	}

	if out == "" {
		out = exporter.FileName(table, format)
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			utils.LogError("Failed to create output directory", err, map[string]interface{}{"dir": dir})
			os.Exit(1)
		}
	}

	f, err := os.Create(out)
	if err != nil {
		utils.LogError("Failed to create export file", err, map[string]interface{}{"path": out})
		os.Exit(1)
	}

	if _, err := svc.ExportTo(f, table, format); err != nil {
		f.Close()
		os.Remove(out)
		utils.LogError("Export failed", err, map[string]interface{}{"table": table, "path": out})
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		utils.LogError("Failed to write export", err, map[string]interface{}{"path": out})
		os.Exit(1)
	}

	var size uint64
	if info, err := os.Stat(out); err == nil {
		size = uint64(info.Size())
	}

	utils.LogInfo("Export written", map[string]interface{}{
		"table":  table,
		"format": string(format),
		"seed":   seed,
		"path":   out,
		"size":   humanize.Bytes(size),
	})
}

func knownTable(tables []string, table string) bool {
	for _, t := range tables {
		if t == table {
			return true
		}
	}
	return false
}
