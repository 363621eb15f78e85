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
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/tmrcoders06-design/BioSentienceAI/pkg/bserrors"
)

func TestError(t *testing.T) {
	tests := []struct {
		name    string
		handler gin.HandlerFunc
		expect  func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "no error passes through",
			handler: func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"ok": true})
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				assert.Contains(w.Body.String(), "ok")
			},
		},
		{
			name: "validation error becomes 400",
			handler: func(c *gin.Context) {
				c.Error(bserrors.Validationf("feature ph_level is negative")) // nolint: errcheck
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusBadRequest, w.Code)
				assert.Contains(w.Body.String(), "feature ph_level is negative")
			},
		},
		{
			name: "internal error becomes opaque 500",
			handler: func(c *gin.Context) {
				c.Error(errors.New("gob decode failed")) // nolint: errcheck
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusInternalServerError, w.Code)
				assert.NotContains(w.Body.String(), "gob decode failed")
			},
		},
		{
			name: "last error wins",
			handler: func(c *gin.Context) {
				c.Error(errors.New("first")) // nolint: errcheck
				c.Error(bserrors.Validationf("second"))
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusBadRequest, w.Code)
				assert.Contains(w.Body.String(), "second")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(Error())
			r.GET("/", tc.handler)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			tc.expect(t, w)
		})
	}
}
