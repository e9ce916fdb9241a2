// Command server exposes the corpus-cleaning pipeline over HTTP. One pair
// per request on /clean, many on /clean/batch; the pipeline is built once at
// startup and shared across request goroutines.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"

	corpuscleaner "github.com/baditaflorin/go_corpus_cleaner"
	"github.com/baditaflorin/go_corpus_cleaner/internal/adapters/langid"
	"github.com/baditaflorin/go_corpus_cleaner/internal/core/domain"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 10 * 1024 * 1024 // 10MB
)

var (
	pipeline *corpuscleaner.Pipeline
	logger   l.Logger
)

// PairRequest is one sentence pair to clean.
type PairRequest struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// PairResponse is the cleaning outcome for one pair.
type PairResponse struct {
	Kept       bool   `json:"kept"`
	Source     string `json:"source,omitempty"`
	Target     string `json:"target,omitempty"`
	RejectedBy string `json:"rejected_by,omitempty"`
}

// BatchRequest carries many pairs in one call.
type BatchRequest struct {
	Pairs []PairRequest `json:"pairs"`
}

// BatchResponse returns the surviving pairs plus rejection accounting.
type BatchResponse struct {
	Pairs      []PairResponse `json:"pairs"`
	Read       int            `json:"read"`
	Kept       int            `json:"kept"`
	Dropped    int            `json:"dropped"`
	RejectedBy map[string]int `json:"rejected_by,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	port := flag.Int("port", DefaultPort, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	srcLang := flag.String("src-lang", "en", "expected source language code")
	tgtLang := flag.String("tgt-lang", "zh", "expected target language code")
	detect := flag.Bool("detect", false, "verify language identity of both sides")
	warmUp := flag.Bool("warm-up", true, "exercise the pipeline on startup")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	var err error
	logger, err = createLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting corpus cleaning server",
		"port", *port,
		"src_lang", *srcLang,
		"tgt_lang", *tgtLang,
		"detect", *detect,
		"cpus", runtime.NumCPU(),
	)

	initPipeline(*srcLang, *tgtLang, *detect, *warmUp)

	server := &fasthttp.Server{
		Handler:            requestHandler,
		ReadTimeout:        *readTimeout,
		WriteTimeout:       *writeTimeout,
		MaxRequestBodySize: *maxRequestSize,
		TCPKeepalive:       true,
		TCPKeepalivePeriod: 3 * time.Minute,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	logger.Info("Server listening", "address", fmt.Sprintf(":%d", *port))
	if err := server.ListenAndServe(fmt.Sprintf(":%d", *port)); err != nil {
		logger.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

func createLogger(logFile string) (l.Logger, error) {
	output := os.Stdout
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		output = f
	}
	return l.NewStandardFactory().CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  true,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,
		MaxFileSize: 10 * 1024 * 1024,
		MaxBackups:  5,
	})
}

// initPipeline builds the shared cleaning pipeline.
func initPipeline(srcLang, tgtLang string, detect, warmUp bool) {
	cfg := corpuscleaner.DefaultRecipeConfig(srcLang, tgtLang)

	if detect {
		detector, err := langid.New(srcLang, tgtLang)
		if err != nil {
			logger.Error("Failed to build language detector", "error", err)
			os.Exit(1)
		}
		cfg.Detector = detector
	}

	opts := []corpuscleaner.Option{corpuscleaner.WithLogger(logger)}
	if warmUp {
		opts = append(opts, corpuscleaner.WithWarmup())
	}

	var err error
	pipeline, err = corpuscleaner.NewDefault(cfg, opts...)
	if err != nil {
		logger.Error("Failed to build pipeline", "error", err)
		os.Exit(1)
	}

	logger.Info("Pipeline initialized", "warm_up", warmUp)
}

// requestHandler is the main fasthttp request handler.
func requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "CorpusCleanServer")

	switch string(ctx.Path()) {
	case "/health":
		handleHealthCheck(ctx)
	case "/clean":
		handleClean(ctx)
	case "/clean/batch":
		handleCleanBatch(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		writeJSONError(ctx, "Not found")
	}

	logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

func handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func handleClean(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return
	}

	var req PairRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request body: "+err.Error())
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, cleanOne(req))
}

func handleCleanBatch(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return
	}

	var req BatchRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request body: "+err.Error())
		return
	}

	resp := BatchResponse{
		Read:       len(req.Pairs),
		RejectedBy: make(map[string]int),
	}
	for _, pr := range req.Pairs {
		one := cleanOne(pr)
		resp.Pairs = append(resp.Pairs, one)
		if one.Kept {
			resp.Kept++
		} else {
			resp.Dropped++
			resp.RejectedBy[one.RejectedBy]++
		}
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, resp)
}

func cleanOne(req PairRequest) PairResponse {
	out, rejectedBy, ok := pipeline.Apply(domain.Pair{Source: req.Source, Target: req.Target})
	if !ok {
		return PairResponse{Kept: false, RejectedBy: rejectedBy}
	}
	return PairResponse{Kept: true, Source: out.Source, Target: out.Target}
}

func writeJSONResponse(ctx *fasthttp.RequestCtx, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		writeJSONError(ctx, "Failed to encode response")
		return
	}
	ctx.SetBody(data)
}

func writeJSONError(ctx *fasthttp.RequestCtx, msg string) {
	data, _ := json.Marshal(ErrorResponse{Error: msg})
	ctx.SetBody(data)
}
