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
package api

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/NVIDIA/service-b/pkg/app"
	"github.com/NVIDIA/service-b/pkg/config"
	"github.com/NVIDIA/service-b/pkg/server"
	"github.com/NVIDIA/service-b/pkg/tasks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastApp() []app.Option {
	return []app.Option{
		app.WithPoolSize(2),
		app.WithShutdownGrace(200 * time.Millisecond),
		app.WithSimulator(tasks.NewSimulator(
			tasks.WithTaskDuration(10*time.Millisecond),
			tasks.WithPeriodicInterval(20*time.Millisecond),
		)),
	}
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}

func TestConstants(t *testing.T) {
	assert.Equal(t, "serviceb", name)
	assert.Equal(t, "dev", versionDefault)
	assert.NotEmpty(t, version)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
}

func TestNewServerRoutes(t *testing.T) {
	svc := app.New(fastApp()...)
	require.NoError(t, svc.Init(context.Background()))
	t.Cleanup(func() { svc.Shutdown() })

	cfg := &config.Config{Message: "configured message", HeavyTaskIterations: 10}
	s := newServer(Options{}, cfg, svc)
	s.SetReady(true)
	h := s.Handler()

	t.Run("info reflects configuration", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/serviceb/info", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Body.String(), "ServiceB Info: configured message | Time: "))
	})

	t.Run("heavy task uses configured loop count", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/serviceb/heavy-task", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Body.String(), "Heavy task completed at "))
	})

	t.Run("ready uses service health check", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("index lists controller routes", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		var resp server.IndexResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, name, resp.Name)
		assert.Contains(t, resp.Routes, "/serviceb/connected-services")
	})
}

func TestNewServerAddressOverride(t *testing.T) {
	s := newServer(Options{Address: "127.0.0.1", Port: 9191},
		&config.Config{Message: "m"}, app.New(fastApp()...))
	assert.Equal(t, "127.0.0.1:9191", s.Addr())
}

func TestServe(t *testing.T) {
	port := freePort(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- Serve(ctx, Options{
			Address:    "127.0.0.1",
			Port:       port,
			Message:    "from options",
			LogLevel:   "error",
			Periodic:   true,
			appOptions: fastApp(),
		})
	}()

	url := "http://127.0.0.1:" + strconv.Itoa(port) + "/serviceb/info"
	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		buf := new(strings.Builder)
		_, _ = io.Copy(buf, resp.Body)
		body = buf.String()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)
	assert.Contains(t, body, "from options")

	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}

func TestServeBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "serviceb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("serviceb: [unclosed"), 0o600))

	err := Serve(context.Background(), Options{ConfigPath: path, LogLevel: "error"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
