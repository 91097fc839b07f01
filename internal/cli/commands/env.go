package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/schemawalk"
	"github.com/reoring/schemawalk/i18n"
	"github.com/reoring/schemawalk/internal/cli/config"
	"github.com/reoring/schemawalk/source"
	"github.com/reoring/schemawalk/tree"
	"github.com/reoring/schemawalk/validator"
)

// env is the per-invocation state shared by the subcommands
type env struct {
	cfg *config.Config
	log *zap.Logger
}

func newEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(cmd)
	if err != nil {
		return nil, err
	}
	log := zap.NewNop()
	if cfg.Verbose {
		if dev, err := zap.NewDevelopment(); err == nil {
			log = dev
		}
	}
	i18n.SetLanguage(cfg.Language)
	return &env{cfg: cfg, log: log}, nil
}

// loadSchema reads a schema file, unwrapping CRDs, and resolves it
func (e *env) loadSchema(path string) (*schemawalk.Schema, error) {
	var doc tree.Value
	if e.cfg.CRDKind != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		docs, err := source.YAMLDocuments(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if doc, err = source.CRDForKind(docs, e.cfg.CRDKind); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	} else {
		var err error
		if doc, err = source.Load(path); err != nil {
			return nil, err
		}
	}
	e.log.Debug("loaded schema", zap.String("path", path))
	return schemawalk.New(source.UnwrapCRD(doc),
		schemawalk.WithLogger(e.log),
		schemawalk.WithValidator(validator.New(validator.WithTranslator(i18n.ForLanguage(e.cfg.Language)))),
		schemawalk.WithMaxReferencePasses(e.cfg.MaxReferencePasses),
		schemawalk.WithDisplayKey(e.cfg.DisplayKey),
	)
}

// write renders v in the configured output format
func (e *env) write(cmd *cobra.Command, v tree.Value) error {
	var (
		out []byte
		err error
	)
	if e.cfg.Output == "yaml" {
		out, err = source.EncodeYAML(v)
	} else {
		out, err = source.EncodeJSON(v, true)
		out = append(out, '\n')
	}
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
