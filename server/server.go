/*
 *     Copyright 2024 The BioSentience Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package server assembles the analysis service: it loads the model store,
// wires the service layer and the router, and owns the HTTP listener.
package server

import (
	"context"
	"fmt"
	"net/http"

	logger "github.com/tmrcoders06-design/BioSentienceAI/internal/bslog"
	"github.com/tmrcoders06-design/BioSentienceAI/server/config"
	"github.com/tmrcoders06-design/BioSentienceAI/server/modelstore"
	"github.com/tmrcoders06-design/BioSentienceAI/server/router"
	"github.com/tmrcoders06-design/BioSentienceAI/server/service"
	"github.com/tmrcoders06-design/BioSentienceAI/trainer/storage"
)

// Server is the analysis HTTP server.
type Server struct {
	config     *config.Config
	httpServer *http.Server
}

// New loads the model artifacts and builds the server. Missing or corrupt
// artifacts fail construction; the process must not serve predictions
// without all three models.
func New(cfg *config.Config) (*Server, error) {
	store, err := modelstore.New(storage.New(cfg.Model.Dir))
	if err != nil {
		return nil, err
	}
	md := store.Metadata()
	logger.Infof("models loaded, trained %s on %d samples", md.TrainingDate.Format("2006-01-02 15:04:05"), md.DatasetSize)

	engine, err := router.Init(cfg, service.New(cfg, store))
	if err != nil {
		return nil, err
	}

	return &Server{
		config: cfg,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
			Handler: engine,
		},
	}, nil
}

// Serve blocks on the HTTP listener.
func (s *Server) Serve() error {
	logger.Infof("server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop drains the listener.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
