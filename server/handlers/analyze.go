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

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tmrcoders06-design/BioSentienceAI/server/types"
)

// @Summary Analyze
// @Description Predict the three targets for one feature vector with
// confidence and explanation
// @Tags Analysis
// @Accept json
// @Produce json
// @Param Analyze body types.AnalyzeRequest true "Analyze"
// @Success 200 {object} types.AnalyzeResponse
// @Failure 400
// @Failure 500
// @Router /api/analyze [post]
func (h *Handlers) Analyze(ctx *gin.Context) {
	var json types.AnalyzeRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	resp, err := h.service.Analyze(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
