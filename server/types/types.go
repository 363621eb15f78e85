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

// Package types holds the HTTP request and response shapes of the analysis
// API. Feature vectors travel as JSON objects keyed by the eleven feature
// names and are validated at the service boundary.
package types

type AnalyzeRequest struct {
	// Data is one sample's eleven measurements.
	Data map[string]float64 `json:"data" binding:"required"`
}

type AnalyzeResponse struct {
	Predictions   map[string]float64 `json:"predictions"`
	Confidence    map[string]float64 `json:"confidence"`
	Explanation   Explanation        `json:"explanation"`
	InputFeatures map[string]float64 `json:"input_features"`
	Disclaimer    string             `json:"disclaimer"`
}

// FeatureImpact is one ranked feature in an explanation.
type FeatureImpact struct {
	Feature    string  `json:"feature"`
	Value      float64 `json:"value"`
	Importance float64 `json:"importance"`

	// Impact is the tier: high, medium or low.
	Impact string `json:"impact"`
}

// Explanation carries the ranked features per target plus the generated
// summary paragraph.
type Explanation struct {
	HealthIndex     []FeatureImpact `json:"health_index"`
	MutationRisk    []FeatureImpact `json:"mutation_risk"`
	AdaptationScore []FeatureImpact `json:"adaptation_score"`
	Summary         string          `json:"summary"`
}

type SimulateRequest struct {
	// BaseFeatures is the sample every sweep step starts from.
	BaseFeatures map[string]float64 `json:"base_features" binding:"required"`

	// VaryFeature is the feature to sweep, one of the eleven known names.
	VaryFeature string `json:"vary_feature" binding:"required"`

	// Steps is the number of sweep points, at least two. Zero selects the
	// default.
	Steps int `json:"steps"`

	// VariationRange is the symmetric sweep fraction f, the swept value
	// runs from base*(1-f) to base*(1+f). Zero selects the default.
	VariationRange float64 `json:"variation_range"`
}

type SimulateResponse struct {
	// Trajectory points are keyed by the varied feature name plus the three
	// targets, ordered by ascending swept value.
	Trajectory     []map[string]float64 `json:"trajectory"`
	VariedFeature  string               `json:"varied_feature"`
	BaseValue      float64              `json:"base_value"`
	VariationRange float64              `json:"variation_range"`
	Steps          int                  `json:"steps"`
}

type ExplainRequest struct {
	// Target defaults to health_index when empty.
	Target string `json:"target"`
}

// ModelPerformance is the held-out evaluation of one model.
type ModelPerformance struct {
	R2Score float64 `json:"r2_score"`
	MSE     float64 `json:"mse"`
}

// RankedFeature is one entry of a model's static importance ranking.
type RankedFeature struct {
	Name       string  `json:"name"`
	Importance float64 `json:"importance"`
}

type ExplainResponse struct {
	Target             string           `json:"target"`
	Description        string           `json:"description"`
	Performance        ModelPerformance `json:"performance"`
	FeatureImportances []RankedFeature  `json:"feature_importances"`
	Interpretation     string           `json:"interpretation"`
}

type SampleDataResponse struct {
	Data map[string]float64 `json:"data"`
	Note string             `json:"note"`
}

type UploadResponse struct {
	Filename string   `json:"filename"`
	Rows     int      `json:"rows"`
	Columns  []string `json:"columns"`

	// PreviewData is a bounded preview of the first rows.
	PreviewData []map[string]any `json:"preview_data"`

	// HasRequiredFeatures reports whether every known feature column is
	// present in the upload.
	HasRequiredFeatures bool `json:"has_required_features"`
}
