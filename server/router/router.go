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

package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/static"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/mcuadros/go-gin-prometheus"

	logger "github.com/tmrcoders06-design/BioSentienceAI/internal/bslog"
	"github.com/tmrcoders06-design/BioSentienceAI/server/config"
	"github.com/tmrcoders06-design/BioSentienceAI/server/handlers"
	"github.com/tmrcoders06-design/BioSentienceAI/server/middlewares"
	"github.com/tmrcoders06-design/BioSentienceAI/server/service"
)

const PrometheusSubsystemName = "biosentience_server"

// Init wires the gin engine: observability middleware, error mapping, CORS,
// optional front-end assets and the analysis routes.
func Init(cfg *config.Config, service service.Service) (*gin.Engine, error) {
	// Set mode.
	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	h := handlers.New(service, cfg.Upload.MaxSize)

	// Prometheus metrics.
	if cfg.Metrics.Enable {
		p := ginprometheus.NewPrometheus(PrometheusSubsystemName)
		// URL removes query string to keep the label set bounded.
		p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
			return c.Request.URL.Path
		}
		p.Use(r)
	}

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true

	// Middleware
	r.Use(ginzap.Ginzap(logger.GinLogger.Desugar(), time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger.GinLogger.Desugar(), true))
	r.Use(middlewares.Error())
	r.Use(cors.New(corsConfig))

	// Web front end.
	if cfg.Server.AssetsDir != "" {
		r.Use(static.Serve("/", static.LocalFile(cfg.Server.AssetsDir, false)))
	}

	// Router
	api := r.Group("/api")
	api.POST("/upload", h.UploadDataset)
	api.POST("/analyze", h.Analyze)
	api.POST("/simulate", h.Simulate)
	api.POST("/explain", h.Explain)
	api.GET("/sample-data", h.GetSampleData)

	// Health Check
	r.GET("/healthy", h.GetHealth)

	return r, nil
}
