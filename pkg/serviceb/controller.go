// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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
package serviceb

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/NVIDIA/service-b/pkg/defaults"
	"github.com/NVIDIA/service-b/pkg/errors"
	"github.com/NVIDIA/service-b/pkg/serializer"
	"github.com/NVIDIA/service-b/pkg/server"
)

const (
	// PathPrefix is the common prefix of every controller route.
	PathPrefix = "/serviceb"

	// DefaultMessage is reported by the info endpoint when none is configured.
	DefaultMessage = "ServiceB is running"

	simulatedUptimeHours = 500
	simulatedMemoryMB    = 1024

	applicationStats = "{\n" +
		"  \"uptime\": \"500 hours\",\n" +
		"  \"memoryUsage\": \"1024 MB\",\n" +
		"  \"connectedServices\": 3,\n" +
		"  \"tasksCompleted\": 1500\n" +
		"}"

	// cancellation is checked once per chunk of heavy-task iterations
	heavyTaskCheckEvery = 1 << 20
)

// Option configures a Controller.
type Option func(*Controller)

// WithMessage sets the message echoed by the info endpoint.
func WithMessage(message string) Option {
	return func(c *Controller) {
		c.message = message
	}
}

// WithHeavyTaskIterations sets the loop count of the heavy-task endpoint.
// Non-positive values keep the default.
func WithHeavyTaskIterations(n int64) Option {
	return func(c *Controller) {
		if n > 0 {
			c.heavyTaskIterations = n
		}
	}
}

// WithClock replaces time.Now for the timestamps in responses.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// Controller serves the /serviceb endpoints. It holds configuration only;
// handlers share no mutable state.
type Controller struct {
	message             string
	heavyTaskIterations int64
	now                 func() time.Time
}

// New returns a Controller with the default message and loop count.
func New(opts ...Option) *Controller {
	c := &Controller{
		message:             DefaultMessage,
		heavyTaskIterations: defaults.HeavyTaskIterations,
		now:                 time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Routes returns the controller handlers keyed by path, ready for
// server.WithHandler.
func (c *Controller) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		PathPrefix + "/health":             getOnly(c.HealthCheck),
		PathPrefix + "/info":               getOnly(c.ServiceInfo),
		PathPrefix + "/connected-services": getOnly(c.ConnectedServices),
		PathPrefix + "/heavy-task":         getOnly(c.HeavyTask),
		PathPrefix + "/current-time":       getOnly(c.CurrentTime),
		PathPrefix + "/fetch-data":         getOnly(c.FetchData),
		PathPrefix + "/uptime":             getOnly(c.Uptime),
		PathPrefix + "/memory-usage":       getOnly(c.MemoryUsage),
		PathPrefix + "/clear-cache":        getOnly(c.ClearCache),
		PathPrefix + "/status":             getOnly(c.Status),
		PathPrefix + "/stats":              getOnly(c.Stats),
		PathPrefix + "/shutdown":           getOnly(c.Shutdown),
	}
}

func getOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
				"Method not allowed", false, map[string]any{"method": r.Method})
			return
		}
		next(w, r)
	}
}

func (c *Controller) timestamp() string {
	return FormatLocalDateTime(c.now())
}

func logCalled(r *http.Request, msg string) {
	slog.InfoContext(r.Context(), msg, "requestID", server.RequestIDFromContext(r.Context()))
}

// HealthCheck handles GET /serviceb/health.
func (c *Controller) HealthCheck(w http.ResponseWriter, r *http.Request) {
	logCalled(r, "Health check endpoint called")
	serializer.RespondText(w, http.StatusOK, "ServiceB is healthy: "+c.timestamp())
}

// ServiceInfo handles GET /serviceb/info.
func (c *Controller) ServiceInfo(w http.ResponseWriter, r *http.Request) {
	logCalled(r, "Service info endpoint called")
	serializer.RespondText(w, http.StatusOK, "ServiceB Info: "+c.message+" | Time: "+c.timestamp())
}

// ConnectedServices handles GET /serviceb/connected-services.
func (c *Controller) ConnectedServices(w http.ResponseWriter, r *http.Request) {
	logCalled(r, "Connected services endpoint called")
	serializer.RespondJSON(w, http.StatusOK, []string{"ServiceA", "ServiceC", "ServiceD"})
}

// HeavyTask handles GET /serviceb/heavy-task. The loop stops early when
// the client goes away; nothing is written in that case.
func (c *Controller) HeavyTask(w http.ResponseWriter, r *http.Request) {
	logCalled(r, "Heavy task endpoint called")
	if _, err := c.simulateHeavyComputation(r.Context()); err != nil {
		slog.Warn("heavy task aborted", "error", err)
		return
	}
	serializer.RespondText(w, http.StatusOK, "Heavy task completed at "+c.timestamp())
}

func (c *Controller) simulateHeavyComputation(ctx context.Context) (int64, error) {
	slog.Debug("Simulating heavy computation")
	var sum int64
	for i := int64(0); i < c.heavyTaskIterations; i++ {
		if i%heavyTaskCheckEvery == 0 && ctx.Err() != nil {
			return sum, errors.WrapWithContext(errors.ErrCodeInterrupted, "heavy computation interrupted",
				ctx.Err(), map[string]any{"iteration": i})
		}
		sum += i
	}
	slog.Debug("Computation complete", "result", sum)
	return sum, nil
}

// CurrentTime handles GET /serviceb/current-time.
func (c *Controller) CurrentTime(w http.ResponseWriter, r *http.Request) {
	logCalled(r, "Current time endpoint called")
	serializer.RespondText(w, http.StatusOK, "Current server time: "+c.timestamp())
}

// FetchData handles GET /serviceb/fetch-data.
func (c *Controller) FetchData(w http.ResponseWriter, r *http.Request) {
	logCalled(r, "Fetching data from database endpoint called")
	serializer.RespondJSON(w, http.StatusOK, simulateDatabaseFetch())
}

func simulateDatabaseFetch() []string {
	slog.Debug("Simulating database fetch operation")
	return []string{"Data 1", "Data 2", "Data 3"}
}

// Uptime handles GET /serviceb/uptime.
func (c *Controller) Uptime(w http.ResponseWriter, r *http.Request) {
	logCalled(r, "Uptime endpoint called")
	slog.Debug("Calculating system uptime")
	serializer.RespondText(w, http.StatusOK, "System uptime: "+strconv.Itoa(simulatedUptimeHours)+" hours")
}

// MemoryUsage handles GET /serviceb/memory-usage.
func (c *Controller) MemoryUsage(w http.ResponseWriter, r *http.Request) {
	logCalled(r, "Memory usage endpoint called")
	slog.Debug("Simulating memory usage")
	serializer.RespondText(w, http.StatusOK, "Memory usage: "+strconv.Itoa(simulatedMemoryMB)+"MB")
}

// ClearCache handles GET /serviceb/clear-cache. There is no cache; the
// call only logs.
func (c *Controller) ClearCache(w http.ResponseWriter, r *http.Request) {
	logCalled(r, "Cache clear endpoint called")
	slog.Debug("Clearing cache")
	serializer.RespondText(w, http.StatusOK, "Cache cleared successfully at "+c.timestamp())
}

// Status handles GET /serviceb/status.
func (c *Controller) Status(w http.ResponseWriter, r *http.Request) {
	logCalled(r, "Status endpoint called")
	serializer.RespondText(w, http.StatusOK, "ServiceB status: Running smoothly at "+c.timestamp())
}

// Stats handles GET /serviceb/stats. The body is a fixed JSON document
// served as text.
func (c *Controller) Stats(w http.ResponseWriter, r *http.Request) {
	logCalled(r, "Application stats endpoint called")
	slog.Debug("Generating application statistics")
	serializer.RespondText(w, http.StatusOK, applicationStats)
}

// Shutdown handles GET /serviceb/shutdown. It reports a shutdown but
// leaves the process running.
func (c *Controller) Shutdown(w http.ResponseWriter, r *http.Request) {
	logCalled(r, "Shutdown endpoint called")
	slog.Warn("Simulating system shutdown")
	serializer.RespondText(w, http.StatusOK, "System shutting down at "+c.timestamp())
}
