package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/viranchils96/text-vectorizer/config"
	utils "github.com/viranchils96/text-vectorizer/utils"
)

func main() {
	cfg := config.Load()

	var path, query, output, format, mode string
	var verbose bool
	flag.StringVar(&path, "p", "documents", "directory of .txt / .txt.gz documents")
	flag.StringVar(&query, "q", "", "rank documents against this text")
	flag.StringVar(&output, "o", "-", "report file, - for stdout")
	flag.StringVar(&format, "format", "json", "report format: json or yaml")
	flag.StringVar(&mode, "mode", "lemma", "query token stream: surface or lemma")
	flag.StringVar(&cfg.Analysis.Lemmatizer, "lemmatizer", cfg.Analysis.Lemmatizer, "rules or snowball")
	flag.IntVar(&cfg.Analysis.TopTerms, "top", cfg.Analysis.TopTerms, "number of most frequent terms to report")
	flag.IntVar(&cfg.Runtime.Workers, "workers", cfg.Runtime.Workers, "documents processed in parallel")
	flag.BoolVar(&verbose, "v", false, "development logging")
	flag.Parse()

	logger := newLogger(verbose)
	defer logger.Sync()

	queryMode, err := utils.ParseMode(mode)
	if err != nil {
		logger.Fatal("parse -mode", zap.Error(err))
	}

	analyzer, err := newAnalyzer(cfg, logger)
	if err != nil {
		logger.Fatal("configure analyzer", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Runtime.LoadTimeout)
	defer cancel()

	start := time.Now()
	docs, err := utils.LoadDocuments(ctx, path, func(err error) {
		logger.Warn("skipping document", zap.Error(err))
	})
	if err != nil {
		logger.Fatal("load documents", zap.String("path", path), zap.Error(err))
	}
	logger.Info("documents loaded", zap.Int("count", len(docs)), zap.Duration("took", time.Since(start)))

	res := analyzer.Process(docs, cfg.Analysis.TopTerms)

	if err := writeReport(output, res, format); err != nil {
		logger.Fatal("write report", zap.Error(err))
	}
	logger.Info("report written", zap.String("output", output), zap.String("format", format))

	if query != "" {
		for _, match := range analyzer.Query(res, query, queryMode, 10) {
			logger.Info("match",
				zap.String("document", res.Names[match.Index]),
				zap.Float64("score", match.Score),
			)
		}
	}

	logger.Info("timings",
		zap.Duration("vocabulary_mean", time.Duration(utils.VocabularyTimer.Mean())),
		zap.Duration("vectorize_mean", time.Duration(utils.VectorizeTimer.Mean())),
		zap.Float64("tokens_per_document", utils.DocumentTokens.Mean()),
	)
}

func newLogger(verbose bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return logger
}

func newAnalyzer(cfg *config.Config, logger *zap.Logger) (*utils.Analyzer, error) {
	opts := []utils.Option{
		utils.WithTokenizer(utils.NewTokenizer(utils.CyrillicLatin, cfg.Analysis.NormalizeUnicode)),
		utils.WithMinLength(cfg.Analysis.MinTokenLength),
		utils.WithWorkers(cfg.Runtime.Workers),
		utils.WithShards(cfg.Runtime.Shards),
		utils.WithLogger(logger),
	}

	if cfg.Analysis.StopwordsFile != "" {
		sw, err := utils.LoadStopWords(cfg.Analysis.StopwordsFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, utils.WithStopWords(sw))
	}

	switch cfg.Analysis.Lemmatizer {
	case "rules":
		if cfg.Analysis.RulesFile != "" {
			rs, err := utils.LoadRuleSet(cfg.Analysis.RulesFile)
			if err != nil {
				return nil, err
			}
			opts = append(opts, utils.WithLemmatizer(rs))
		}
	case "snowball":
		opts = append(opts, utils.WithLemmatizer(utils.SnowballLemmatizer{Language: cfg.Analysis.Language}))
	default:
		return nil, fmt.Errorf("unknown lemmatizer %q", cfg.Analysis.Lemmatizer)
	}

	return utils.NewAnalyzer(opts...), nil
}

func writeReport(output string, res *utils.Result, format string) error {
	var w io.Writer = os.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer f.Close()
		w = f
	}
	return utils.WriteReport(w, res, format)
}
