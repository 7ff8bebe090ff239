// Copyright (c) 2025, Neurotune Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package monitor

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/neurotune/neurotune/pkg/defaults"
	"github.com/neurotune/neurotune/pkg/serializer"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// metricsServer exposes the process Prometheus registry and a liveness
// probe while the monitor loop runs.
type metricsServer struct {
	srv *http.Server
}

func newMetricsServer(addr string) *metricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", handleHealthz)

	return &metricsServer{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadTimeout:       defaults.ServerReadTimeout,
			ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
			WriteTimeout:      defaults.ServerWriteTimeout,
			IdleTimeout:       defaults.ServerIdleTimeout,
		},
	}
}

// start runs the listener in the background and returns the channel a
// listen failure is delivered on.
func (s *metricsServer) start() <-chan error {
	errChan := make(chan error, 1)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()
	return errChan
}

// shutdown drains the server gracefully.
func (s *metricsServer) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaults.ServerShutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

// handleHealthz handles GET /healthz
func handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}
