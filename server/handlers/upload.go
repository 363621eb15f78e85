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
)

// @Summary Upload Dataset
// @Description Upload a CSV file and get a bounded preview
// @Tags Dataset
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} types.UploadResponse
// @Failure 400
// @Failure 500
// @Router /api/upload [post]
func (h *Handlers) UploadDataset(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": "no file uploaded"})
		return
	}

	if fileHeader.Size > h.maxUploadSize {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": "file exceeds the upload size limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}
	defer file.Close()

	resp, err := h.service.UploadDataset(ctx.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
