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

package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	logger "github.com/tmrcoders06-design/BioSentienceAI/internal/bslog"
	"github.com/tmrcoders06-design/BioSentienceAI/pkg/bserrors"
)

type ErrorResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"errors,omitempty"`
}

// Error maps service errors onto HTTP responses: validation errors become
// 400 with the caller-facing message, everything else a generic 500.
func Error() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		err := c.Errors.Last()
		if err == nil {
			return
		}

		if bserrors.IsValidation(err.Err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: http.StatusText(http.StatusBadRequest),
				Error:   err.Err.Error(),
			})
			return
		}

		// No partial results for unexpected failures.
		logger.Errorf("request failed: %s", err.Err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: http.StatusText(http.StatusInternalServerError),
		})
	}
}
