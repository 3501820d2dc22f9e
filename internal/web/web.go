// Package web publishes the generated feed over HTTP so calendar
// clients can subscribe to it, regenerating from the source workbook
// on a cron schedule.
package web

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"classfeed/internal/config"
	"classfeed/internal/ics"
	appLog "classfeed/internal/log"
	"classfeed/internal/source"
)

// Server serves the most recently generated feed from memory.
type Server struct {
	mux *http.ServeMux

	mu          sync.RWMutex
	feed        []byte
	generatedAt time.Time
}

func NewServer() *Server {
	s := &Server{mux: http.NewServeMux()}
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/calendar.ics", s.handleCalendar)
	return s
}

func (s *Server) Handler() http.Handler { return s.mux }

// SetFeed swaps in a freshly generated feed document.
func (s *Server) SetFeed(body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feed = body
	s.generatedAt = time.Now()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}

func (s *Server) handleCalendar(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	feed := s.feed
	generatedAt := s.generatedAt
	s.mu.RUnlock()

	if len(feed) == 0 {
		http.Error(w, "feed not generated yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Last-Modified", generatedAt.UTC().Format(http.TimeFormat))
	w.Write(feed)
}

// Run generates the feed once, then serves it on cfg.Listen while a
// cron schedule re-reads the workbook and swaps the document in place.
// It returns when ctx is canceled or the listener fails.
func Run(ctx context.Context, cfg *config.Config, xlsxPath string) error {
	srv := NewServer()

	regenerate := func() {
		table, err := source.LoadWorkbook(xlsxPath, cfg.Sheet)
		if err != nil {
			appLog.Error("refresh failed", err, "path", xlsxPath)
			return
		}
		b := ics.NewBuilder(ics.Options{
			Timezone:  cfg.Timezone,
			ProdID:    cfg.ProdID,
			UIDDomain: cfg.UIDDomain,
		})
		res := b.Build(table)
		srv.SetFeed([]byte(res.Feed))
		appLog.Info("feed refreshed", "events", res.Events, "skipped", res.Skipped)
	}

	// First generation is synchronous so subscribers never see an
	// empty feed after startup unless the workbook itself is broken.
	regenerate()

	sched := cron.New()
	if _, err := sched.AddFunc(cfg.RefreshCron, regenerate); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	httpSrv := &http.Server{Addr: cfg.Listen, Handler: srv.Handler()}

	errCh := make(chan error, 1)
	go func() {
		appLog.Info("serving feed", "listen", "http://"+cfg.Listen+"/calendar.ics", "refresh", cfg.RefreshCron)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
