// palettegen builds the margulies gradient and prints wb_view palette
// registration code for pasting into PaletteFile.cxx.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/palettegen/internal/config"
	"github.com/Faultbox/palettegen/internal/logger"
	"github.com/Faultbox/palettegen/pkg/colormap"
)

var (
	flagList        = flag.Bool("list", false, "List available colormaps and exit")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config to this path and exit")
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	switch {
	case *flagList:
		for _, name := range colormap.Names() {
			fmt.Println(name)
		}
	case *flagWriteConfig != "":
		if err := cfg.SaveTo(*flagWriteConfig); err != nil {
			logger.Error("failed to write config", zap.String("path", *flagWriteConfig), zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		logger.Info("config written", zap.String("path", *flagWriteConfig))
	default:
		if err := run(cfg); err != nil {
			logger.Error("generation failed", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
	}
}
