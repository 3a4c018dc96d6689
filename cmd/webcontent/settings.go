package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	webcontent "github.com/alnah/go-webcontent"
	"github.com/alnah/go-webcontent/internal/assets"
	"github.com/alnah/go-webcontent/internal/config"
	"github.com/alnah/go-webcontent/internal/hints"
	"github.com/alnah/go-webcontent/internal/logger"
)

// ErrUsage marks invalid command lines and environment values.
var ErrUsage = errors.New("invalid usage")

// settings is the resolved configuration of one command run.
type settings struct {
	root string
	cfg  *config.Config
	log  logger.Logger
}

// resolveSettings merges defaults, the config file, the environment and
// flags, in increasing priority, and builds the logger.
func resolveSettings(f *commonFlags, env *Environment) (*settings, error) {
	warnUnknownEnvVars(env.Stderr, env.Environ())

	envCfg, err := loadEnvConfig(env.Getenv)
	if err != nil {
		return nil, err
	}

	root := f.dir
	if root == "" {
		root = "."
	}

	cfg := config.DefaultConfig()
	name := f.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name != "" {
		cfg, err = config.LoadConfigIn(root, name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)

	if f.strict {
		cfg.Strict = true
	}
	switch {
	case f.verbose:
		cfg.Log.Level = "debug"
	case f.quiet:
		cfg.Log.Level = "error"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()

	return &settings{
		root: root,
		cfg:  cfg,
		log: logger.New(env.Stderr, logger.Options{
			Level:   cfg.Log.Level,
			Format:  cfg.Log.Format,
			NoColor: env.Getenv("NO_COLOR") != "",
		}),
	}, nil
}

// newGenerator builds a library generator from resolved settings.
func newGenerator(s *settings) (*webcontent.Generator, error) {
	return webcontent.NewGenerator(
		webcontent.WithRoot(s.root),
		webcontent.WithStrict(s.cfg.Strict),
		webcontent.WithLogger(s.log),
	)
}

// unexpectedArgs reports positional arguments to commands that take none.
func unexpectedArgs(args []string) error {
	return fmt.Errorf("%w: unexpected argument %q (input and output paths are fixed, use -C to change the project root)", ErrUsage, args[0])
}

// reportError prints err with an actionable hint and returns its exit code.
func reportError(w io.Writer, err error) int {
	fmt.Fprintf(w, "error: %v%s\n", err, hintFor(err))
	return exitCodeFor(err)
}

// hintFor returns the hint matching err, or "" when none applies.
func hintFor(err error) string {
	switch {
	case errors.Is(err, webcontent.ErrSourceNotFound):
		msg := err.Error()
		for _, role := range assets.Roles {
			rel, _ := assets.RelPath(role)
			if strings.Contains(msg, rel) {
				return hints.ForMissingSource(rel)
			}
		}
		return hints.ForMissingSource(assets.DataDir + "/")
	case errors.Is(err, webcontent.ErrInvalidEncoding):
		return hints.ForEncoding()
	case errors.Is(err, webcontent.ErrTagNotFound):
		return hints.ForMissingTags(missingTagsIn(err.Error()))
	case errors.Is(err, webcontent.ErrWriteHeader), errors.Is(err, webcontent.ErrInvalidRoot):
		return hints.ForWriteFailure()
	case errors.Is(err, config.ErrConfigNotFound):
		return configNotFoundHint(err.Error())
	case errors.Is(err, ErrAddrInUse):
		return hints.ForAddrInUse()
	}
	return ""
}

// missingTagsIn lists the reference tags named in msg.
func missingTagsIn(msg string) []string {
	var missing []string
	for _, tag := range []string{webcontent.StylesheetTag, webcontent.ScriptTag} {
		if strings.Contains(msg, tag) {
			missing = append(missing, tag)
		}
	}
	return missing
}

// configNotFoundHint extracts the searched paths from a by-name lookup error.
func configNotFoundHint(msg string) string {
	_, tried, ok := strings.Cut(msg, "tried ")
	if !ok {
		return hints.ForConfigNotFound(nil)
	}
	return hints.ForConfigNotFound(strings.Split(tried, ", "))
}
