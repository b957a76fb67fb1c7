package checkout

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"
)

var (
	ErrCallbackTimeout = errors.New("timed out waiting for the payment provider to redirect back")
	ErrCancelled       = errors.New("payment was cancelled")
	ErrStateMismatch   = errors.New("payment callback state mismatch")
)

const callbackPage = "Payment step complete. You can close this window and return to the terminal."

// route validates the query of one redirect path. A nil error completes the
// wait with the query values.
type route struct {
	path     string
	validate func(url.Values) error
}

// callbackServer waits for a single browser redirect from a payment provider.
type callbackServer struct {
	listener   net.Listener
	server     *http.Server
	resultCh   chan callbackResult
	resultOnce sync.Once
	closeOnce  sync.Once
}

type callbackResult struct {
	query url.Values
	err   error
}

func newState() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func startCallbackServer(listenAddr string, routes ...route) (*callbackServer, error) {
	if listenAddr == "" {
		listenAddr = "127.0.0.1:0"
	}

	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, fmt.Errorf("listen callback server: %w", err)
	}

	cb := &callbackServer{
		listener: listener,
		resultCh: make(chan callbackResult, 1),
	}

	mux := http.NewServeMux()
	for _, r := range routes {
		mux.HandleFunc(r.path, cb.handler(r.validate))
	}

	cb.server = &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		if serveErr := cb.server.Serve(cb.listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			cb.trySendResult(callbackResult{err: serveErr})
		}
	}()

	return cb, nil
}

func (c *callbackServer) URL(path string) string {
	if tcpAddr, ok := c.listener.Addr().(*net.TCPAddr); ok {
		return fmt.Sprintf("http://localhost:%d%s", tcpAddr.Port, path)
	}
	return "http://localhost" + path
}

func (c *callbackServer) wait(ctx context.Context, timeout time.Duration) (url.Values, error) {
	defer func() { _ = c.Close() }()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case result := <-c.resultCh:
		return result.query, result.err
	case <-timer.C:
		return nil, ErrCallbackTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *callbackServer) Close() error {
	var closeErr error
	c.closeOnce.Do(func() {
		closeErr = c.server.Close()
	})
	return closeErr
}

func (c *callbackServer) handler(validate func(url.Values) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if err := validate(query); err != nil {
			c.trySendResult(callbackResult{err: err})
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		c.trySendResult(callbackResult{query: query})
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(callbackPage))
	}
}

func (c *callbackServer) trySendResult(result callbackResult) {
	c.resultOnce.Do(func() {
		c.resultCh <- result
	})
}
