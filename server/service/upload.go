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

package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	logger "github.com/tmrcoders06-design/BioSentienceAI/internal/bslog"
	"github.com/tmrcoders06-design/BioSentienceAI/pkg/bio"
	"github.com/tmrcoders06-design/BioSentienceAI/pkg/bserrors"
	"github.com/tmrcoders06-design/BioSentienceAI/server/types"
)

// UploadPreviewRows bounds the preview returned for an uploaded CSV.
const UploadPreviewRows = 5

// UploadDataset stores the uploaded CSV in the holding area under a
// uuid-prefixed name and returns the column list, row count and a bounded
// preview. Files are scoped to the request that produced the preview; there
// is no retention policy beyond the holding directory.
func (s *service) UploadDataset(ctx context.Context, filename string, r io.Reader) (*types.UploadResponse, error) {
	base := filepath.Base(filename)
	if !strings.HasSuffix(strings.ToLower(base), ".csv") {
		return nil, bserrors.Validationf("only CSV files are supported")
	}

	if err := os.MkdirAll(s.cfg.Upload.Dir, 0700); err != nil {
		return nil, err
	}

	storedPath := filepath.Join(s.cfg.Upload.Dir, fmt.Sprintf("%s-%s", uuid.NewString(), base))
	file, err := os.OpenFile(storedPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return nil, err
	}

	if _, err := io.Copy(file, r); err != nil {
		file.Close()
		os.Remove(storedPath)
		return nil, err
	}

	if err := file.Close(); err != nil {
		return nil, err
	}
	logger.With("upload", storedPath).Infof("stored uploaded dataset %s", base)

	resp, err := previewCSV(storedPath)
	if err != nil {
		return nil, err
	}
	resp.Filename = base
	return resp, nil
}

// previewCSV reads the stored upload once, counting rows and keeping the
// first rows as a typed preview.
func previewCSV(path string) (*types.UploadResponse, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err == io.EOF {
		return nil, bserrors.Validationf("CSV file is empty")
	}
	if err != nil {
		return nil, bserrors.Validation(err)
	}

	columns := make(map[string]struct{}, len(header))
	for _, col := range header {
		columns[col] = struct{}{}
	}
	hasRequired := true
	for _, name := range bio.FeatureNames {
		if _, ok := columns[name]; !ok {
			hasRequired = false
			break
		}
	}

	rows := 0
	preview := make([]map[string]any, 0, UploadPreviewRows)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, bserrors.Validation(err)
		}

		if rows < UploadPreviewRows {
			row := make(map[string]any, len(header))
			for i, col := range header {
				if i >= len(record) {
					continue
				}
				if f, err := strconv.ParseFloat(record[i], 64); err == nil {
					row[col] = f
				} else {
					row[col] = record[i]
				}
			}
			preview = append(preview, row)
		}
		rows++
	}

	return &types.UploadResponse{
		Rows:                rows,
		Columns:             header,
		PreviewData:         preview,
		HasRequiredFeatures: hasRequired,
	}, nil
}
