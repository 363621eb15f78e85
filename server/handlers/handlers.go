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
	"github.com/tmrcoders06-design/BioSentienceAI/server/service"
)

// Handlers binds the HTTP surface to the service layer.
type Handlers struct {
	service       service.Service
	maxUploadSize int64
}

// New returns a new Handlers instance.
func New(service service.Service, maxUploadSize int64) *Handlers {
	return &Handlers{
		service:       service,
		maxUploadSize: maxUploadSize,
	}
}
