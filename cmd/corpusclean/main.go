// Command corpusclean streams a parallel corpus through the cleaning
// pipeline. Input is either two aligned files (-src/-tgt) or one tab-joined
// file (-tsv); "-" reads stdin / writes stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/baditaflorin/l"

	corpuscleaner "github.com/baditaflorin/go_corpus_cleaner"
	"github.com/baditaflorin/go_corpus_cleaner/internal/adapters/langid"
	"github.com/baditaflorin/go_corpus_cleaner/internal/adapters/stream"
	"github.com/baditaflorin/go_corpus_cleaner/internal/core/domain"
)

func main() {
	var (
		tsvPath    = flag.String("tsv", "", "tab-joined src\\ttgt input file (\"-\" for stdin)")
		outPath    = flag.String("out", "-", "output file for -tsv mode (\"-\" for stdout)")
		srcPath    = flag.String("src", "", "source-side input file")
		tgtPath    = flag.String("tgt", "", "target-side input file")
		srcOutPath = flag.String("src-out", "", "source-side output file")
		tgtOutPath = flag.String("tgt-out", "", "target-side output file")

		srcLang    = flag.String("src-lang", "en", "expected source language code")
		tgtLang    = flag.String("tgt-lang", "zh", "expected target language code")
		overlap    = flag.Float64("overlap", 0.8, "max sequence-overlap ratio between sides (0 disables)")
		ratio      = flag.Float64("ratio", 3, "max length ratio between sides (0 disables)")
		maxWord    = flag.Int("max-word", 40, "max token length per side (0 disables)")
		detect     = flag.Bool("detect", false, "verify language identity of both sides")
		t2sSource  = flag.Bool("t2s-src", false, "convert Traditional to Simplified Chinese on the source side")
		t2sTarget  = flag.Bool("t2s-tgt", false, "convert Traditional to Simplified Chinese on the target side")
		numWorkers = flag.Int("workers", runtime.NumCPU(), "pipeline worker goroutines")
		batchSize  = flag.Int("batch", stream.DefaultBatchSize, "pairs per worker batch")
	)
	flag.Parse()

	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:     os.Stderr,
		JsonFormat: false,
		AddSource:  false,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	defer logger.Close()

	cfg := corpuscleaner.DefaultRecipeConfig(*srcLang, *tgtLang)
	cfg.OverlapRatio = *overlap
	cfg.LengthRatio = *ratio
	cfg.MaxWordLength = *maxWord
	cfg.Hant2HansSource = *t2sSource
	cfg.Hant2HansTarget = *t2sTarget

	if *detect {
		detector, err := langid.New(*srcLang, *tgtLang)
		if err != nil {
			logger.Error("Failed to build language detector", "error", err)
			os.Exit(1)
		}
		cfg.Detector = detector
	}

	pipeline, err := corpuscleaner.NewDefault(cfg, corpuscleaner.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to build pipeline", "error", err)
		os.Exit(1)
	}

	processor, err := pipeline.NewProcessor(stream.Config{
		Workers:   *numWorkers,
		BatchSize: *batchSize,
	})
	if err != nil {
		logger.Error("Failed to build processor", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var stats domain.Stats
	switch {
	case *tsvPath != "":
		stats, err = runTSV(ctx, processor, *tsvPath, *outPath)
	case *srcPath != "" && *tgtPath != "" && *srcOutPath != "" && *tgtOutPath != "":
		stats, err = runAligned(ctx, processor, *srcPath, *tgtPath, *srcOutPath, *tgtOutPath)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("Cleaning failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Cleaning finished",
		"read", stats.Read,
		"kept", stats.Kept,
		"dropped", stats.Dropped,
		"malformed", stats.Malformed,
		"rejected_by", stats.RejectedBy,
		"bytes", stats.BytesProcessed,
		"duration", stats.ProcessingTime,
	)
}

func runTSV(ctx context.Context, processor *stream.Processor, inPath, outPath string) (domain.Stats, error) {
	in, err := openInput(inPath)
	if err != nil {
		return domain.Stats{}, err
	}
	defer in.Close()

	out, err := openOutput(outPath)
	if err != nil {
		return domain.Stats{}, err
	}
	defer out.Close()

	return processor.CleanTSV(ctx, in, out)
}

func runAligned(ctx context.Context, processor *stream.Processor, srcPath, tgtPath, srcOutPath, tgtOutPath string) (domain.Stats, error) {
	src, err := openInput(srcPath)
	if err != nil {
		return domain.Stats{}, err
	}
	defer src.Close()

	tgt, err := openInput(tgtPath)
	if err != nil {
		return domain.Stats{}, err
	}
	defer tgt.Close()

	srcOut, err := openOutput(srcOutPath)
	if err != nil {
		return domain.Stats{}, err
	}
	defer srcOut.Close()

	tgtOut, err := openOutput(tgtOutPath)
	if err != nil {
		return domain.Stats{}, err
	}
	defer tgtOut.Close()

	return processor.CleanAligned(ctx, src, tgt, srcOut, tgtOut)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
