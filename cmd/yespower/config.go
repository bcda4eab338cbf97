// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/ltcsuite/ltcd/ltcutil"
	"github.com/ltcsuite/yespowerd/chaincfg"
	"github.com/ltcsuite/yespowerd/yespower"
)

const (
	defaultConfigFilename = "yespower.conf"
	defaultLogFilename    = "yespower.log"
	defaultLogDirname     = "logs"
	defaultLogLevel       = "info"
	defaultAlgo           = "yespower"
	defaultCacheSize      = 1024
)

var (
	defaultHomeDir    = ltcutil.AppDataDir("yespower", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// config defines the configuration options for yespower.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`
	LogDir     string `long:"logdir" description:"Directory to log output"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`

	Algo      string `short:"a" long:"algo" description:"Named parameter preset {yespower, yespowerr16, yescrypt, yescryptr16, yescryptr24, yescryptr32, regtest}"`
	Version   string `long:"version" description:"Override the preset's algorithm version {0.5, 1.0}"`
	N         uint32 `long:"n" description:"Override the preset's block count N, a power of two"`
	R         uint32 `long:"r" description:"Override the preset's block size factor r"`
	Pers      string `long:"pers" description:"Override the preset's personalization string"`
	NoPers    bool   `long:"nopers" description:"Clear the preset's personalization string"`
	EmptyPers bool   `long:"emptypers" description:"Use an empty personalization string, which unlike --nopers still applies the 0.5 pers step"`
	Strict    bool   `long:"strict" description:"Only accept N and r within the reference implementation's bounds"`
	MaxMem    uint64 `long:"maxmem" description:"Largest scratch area to allocate in MiB -- 0 selects half of physical memory"`

	Workers   int    `short:"j" long:"workers" description:"Number of digests computed at once -- 0 selects the number of CPUs"`
	CacheSize uint   `long:"cachesize" description:"Number of digests kept in memory -- 0 disables the cache"`
	DataDir   string `short:"b" long:"datadir" description:"Directory to persist computed digests in -- empty disables the store"`
	Header    bool   `long:"header" description:"Treat inputs as 80-byte block headers and check their proof of work"`

	powParams *chaincfg.Params
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// newConfigParser returns a new command line flags parser.
func newConfigParser(cfg *config, options flags.Options) *flags.Parser {
	return flags.NewParser(cfg, options)
}

// defaultConfig returns a config populated with the default values.
func defaultConfig() config {
	return config{
		ConfigFile: defaultConfigFile,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
		Algo:       defaultAlgo,
		CacheSize:  defaultCacheSize,
	}
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The above results in yespower functioning properly without any config
// settings while still allowing the user to override settings with config
// files and command line options.  Command line options always take
// precedence.
func loadConfig() (*config, []string, error) {
	cfg := defaultConfig()

	// Pre-parse the command line options to see if an alternative config
	// file or the help flag was specified.  Any errors aside from the
	// help message error can be ignored here since they will be caught by
	// the final parse below.
	preCfg := cfg
	preParser := newConfigParser(&preCfg, flags.HelpFlag)
	_, err := preParser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
	}

	// Load additional config from file.  A missing default config file is
	// not an error.
	parser := newConfigParser(&cfg, flags.Default)
	configFile := cleanAndExpandPath(preCfg.ConfigFile)
	err = flags.NewIniParser(parser).ParseFile(configFile)
	if err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) || preCfg.ConfigFile != defaultConfigFile {
			fmt.Fprintf(os.Stderr, "Error parsing config file: %v\n", err)
			fmt.Fprintln(os.Stderr, "Use yespower -h to show usage")
			return nil, nil, err
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if !errors.As(err, &e) || e.Type != flags.ErrHelp {
			fmt.Fprintln(os.Stderr, "Use yespower -h to show usage")
		}
		return nil, nil, err
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}

	// Initialize log rotation.  After log rotation has been initialized,
	// the logger variables may be used.
	if cfg.LogDir != "" {
		cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := initLogRotator(logFile); err != nil {
			return nil, nil, err
		}
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("%s: %v", "loadConfig", err.Error())
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	if cfg.DataDir != "" {
		cfg.DataDir = cleanAndExpandPath(cfg.DataDir)
	}

	limit := cfg.MaxMem << 20
	if cfg.MaxMem == 0 {
		limit = defaultMaxMem()
	}
	cfg.powParams, err = cfg.resolveParams(limit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}

// defaultMaxMem returns half of the physical memory, or the engine's own
// limit when the memory size is unknown.
func defaultMaxMem() uint64 {
	total, err := physicalMemory()
	if err != nil || total == 0 {
		return yespower.MaxScratchBytes
	}
	return total / 2
}

// resolveParams looks up the configured preset, applies the overrides and
// validates the result against the scratch limit in bytes.
func (cfg *config) resolveParams(maxMem uint64) (*chaincfg.Params, error) {
	preset, err := chaincfg.ByName(cfg.Algo)
	if err != nil {
		return nil, fmt.Errorf("unknown algorithm %q -- supported "+
			"presets %v", cfg.Algo, chaincfg.Names())
	}

	// Work on a copy so the registered preset is never modified.
	params := *preset
	if preset.Algorithm.Pers != nil {
		params.Algorithm.Pers = make([]byte, len(preset.Algorithm.Pers))
		copy(params.Algorithm.Pers, preset.Algorithm.Pers)
	}

	if cfg.Version != "" {
		params.Algorithm.Version, err = yespower.ParseVersion(cfg.Version)
		if err != nil {
			return nil, err
		}
	}
	if cfg.N != 0 {
		params.Algorithm.N = cfg.N
	}
	if cfg.R != 0 {
		params.Algorithm.R = cfg.R
	}
	// An empty --pers is indistinguishable from an unset one, so the empty
	// but present string has its own option.
	numPersOpts := 0
	for _, set := range []bool{cfg.Pers != "", cfg.NoPers, cfg.EmptyPers} {
		if set {
			numPersOpts++
		}
	}
	switch {
	case numPersOpts > 1:
		return nil, errors.New("the pers, nopers, and emptypers options " +
			"can not be used together")
	case cfg.NoPers:
		params.Algorithm.Pers = nil
	case cfg.EmptyPers:
		params.Algorithm.Pers = []byte{}
	case cfg.Pers != "":
		params.Algorithm.Pers = []byte(cfg.Pers)
	}

	if cfg.Strict {
		err = params.Algorithm.ValidateReference()
	} else {
		err = params.Algorithm.Validate()
	}
	if err != nil {
		return nil, err
	}

	if size := params.Algorithm.ScratchBytes(); size > maxMem {
		return nil, fmt.Errorf("%v needs %d bytes of scratch, more "+
			"than the limit of %d", &params.Algorithm, size, maxMem)
	}

	return &params, nil
}
