package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/livefir/htmljsx"
	"github.com/livefir/htmljsx/cmd/htmljsx/internal/config"
	"github.com/livefir/htmljsx/internal/playground"
)

// Serve runs the browser playground until interrupted
func Serve(args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	addr, args, err := addrFlag(cfg.ListenAddr, args)
	if err != nil {
		return err
	}

	opts, rest, err := converterFlags(cfg, args)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           playground.New(playground.WithConverter(htmljsx.New(opts...))),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Playground listening on http://%s", displayAddr(addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Printf("Shutting down playground")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// addrFlag pulls --addr out of args
func addrFlag(def string, args []string) (string, []string, error) {
	addr := def
	var rest []string
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--addr":
			if i+1 >= len(args) {
				return "", nil, fmt.Errorf("--addr requires a value")
			}
			addr = args[i+1]
			i++
		case strings.HasPrefix(args[i], "--addr="):
			addr = strings.TrimPrefix(args[i], "--addr=")
		default:
			rest = append(rest, args[i])
		}
	}
	return addr, rest, nil
}

func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	return addr
}
