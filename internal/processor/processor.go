package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"codeberg.org/snonux/goodtranslator/internal/batch"
	"codeberg.org/snonux/goodtranslator/internal/cli"
	"codeberg.org/snonux/goodtranslator/internal/models"
	"codeberg.org/snonux/goodtranslator/internal/store"
	"codeberg.org/snonux/goodtranslator/internal/translation"
)

// Summary counts the outcomes of a batch
type Summary struct {
	Total   int
	Cloud   int
	Local   int
	Failed  int
	Invalid int
}

// Summarize counts pairs by outcome
func Summarize(pairs []translation.Pair) Summary {
	s := Summary{Total: len(pairs)}
	for _, p := range pairs {
		switch {
		case errors.Is(p.Result.Err, translation.ErrInvalidInput):
			s.Invalid++
		case p.Result.Err != nil:
			s.Failed++
		case p.Result.Backend == translation.BackendCloud:
			s.Cloud++
		case p.Result.Backend == translation.BackendLocal:
			s.Local++
		}
	}
	return s
}

// Processor handles the main translation logic
type Processor struct {
	flags      *cli.Flags
	translator *translation.Translator
	logger     *logrus.Logger
	stdout     io.Writer
	stderr     io.Writer
}

// NewProcessor creates the translator from flags and configuration
func NewProcessor(ctx context.Context, flags *cli.Flags, logger *logrus.Logger) (*Processor, error) {
	if logger == nil {
		logger = logrus.New()
	}

	translator, err := translation.New(ctx, TranslationConfig(flags, logger))
	if err != nil {
		return nil, err
	}

	return NewProcessorWithTranslator(flags, translator, logger), nil
}

// NewProcessorWithTranslator creates a processor around an existing translator
func NewProcessorWithTranslator(flags *cli.Flags, translator *translation.Translator, logger *logrus.Logger) *Processor {
	if logger == nil {
		logger = logrus.New()
	}

	return &Processor{
		flags:      flags,
		translator: translator,
		logger:     logger,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

// SetOutput redirects what the processor prints
func (p *Processor) SetOutput(stdout, stderr io.Writer) {
	p.stdout = stdout
	p.stderr = stderr
}

// Close releases the translator's backends
func (p *Processor) Close() error {
	return p.translator.Close()
}

// ProcessSingleText translates a single text from the command line
func (p *Processor) ProcessSingleText(ctx context.Context, text string) error {
	res := p.translator.Translate(ctx, text)
	if !res.OK() {
		fmt.Fprintln(p.stdout, translation.NoResultMarker)
		return res.Err
	}

	p.logger.WithFields(logrus.Fields{
		"backend":     res.Backend,
		"source_lang": res.Source.String(),
	}).Debug("Translated single text")

	fmt.Fprintln(p.stdout, res.Text)
	return nil
}

// ProcessBatch translates all texts from the batch file
func (p *Processor) ProcessBatch(ctx context.Context) error {
	texts, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	p.logger.WithField("texts", len(texts)).Info("Translating batch")
	pairs := p.translator.BatchTranslate(ctx, texts)

	for _, pair := range pairs {
		fmt.Fprintln(p.stdout, translation.FormatPair(pair))
		if !pair.Result.OK() {
			fmt.Fprintf(p.stderr, "Error translating '%s': %v\n", pair.Text, pair.Result.Err)
		}
	}

	if outputFile := stringSetting("output.file", p.flags.OutputFile); outputFile != "" {
		if err := translation.SaveResults(outputFile, pairs); err != nil {
			return err
		}
		fmt.Fprintf(p.stdout, "Results written to: %s\n", outputFile)
	}

	if dbPath := stringSetting("output.db", p.flags.DBPath); dbPath != "" {
		if err := p.saveToStore(ctx, dbPath, pairs); err != nil {
			return err
		}
	}

	p.printSummary(Summarize(pairs))
	return nil
}

func (p *Processor) saveToStore(ctx context.Context, dbPath string, pairs []translation.Pair) error {
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	runID, err := s.SaveBatch(ctx, pairs)
	if err != nil {
		return err
	}

	p.logger.WithFields(logrus.Fields{
		"run_id": runID,
		"db":     dbPath,
	}).Info("Batch results recorded")
	fmt.Fprintf(p.stdout, "Results recorded in %s (run %s)\n", dbPath, runID)
	return nil
}

func (p *Processor) printSummary(s Summary) {
	fmt.Fprintf(p.stdout, "\n=== Batch Translation Summary ===\n")
	fmt.Fprintf(p.stdout, "Total texts: %d\n", s.Total)
	fmt.Fprintf(p.stdout, "Translated via cloud: %d\n", s.Cloud)
	fmt.Fprintf(p.stdout, "Translated via local model: %d\n", s.Local)
	if s.Failed > 0 {
		fmt.Fprintf(p.stdout, "No result: %d\n", s.Failed)
	}
	if s.Invalid > 0 {
		fmt.Fprintf(p.stdout, "Invalid input: %d\n", s.Invalid)
	}
	fmt.Fprintf(p.stdout, "=================================\n")
}

type availabilityChecker interface {
	Name() string
	IsAvailable(ctx context.Context) error
}

// CheckBackends reports the availability of each enabled backend
func (p *Processor) CheckBackends(ctx context.Context) error {
	var backends []availabilityChecker
	if p.translator.CloudEnabled() {
		backends = append(backends, p.translator.Cloud())
	}
	if p.translator.LocalEnabled() {
		backends = append(backends, p.translator.Local())
	}

	failed := 0
	for _, b := range backends {
		if err := b.IsAvailable(ctx); err != nil {
			fmt.Fprintf(p.stdout, "  ✗ %s: %v\n", b.Name(), err)
			failed++
			continue
		}
		fmt.Fprintf(p.stdout, "  ✓ %s\n", b.Name())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d backends unavailable", failed, len(backends))
	}
	return nil
}

// ListModels prints the models served by the local model server
func ListModels(ctx context.Context, flags *cli.Flags, w io.Writer) error {
	lister := models.NewLister(stringSetting("local.url", flags.LocalURL), cli.GetLocalAPIKey())
	return lister.ListAvailableModels(ctx, w)
}
