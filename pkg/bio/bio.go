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

// Package bio holds the measurement model shared by the trainer and the
// analysis server: the fixed set of eleven biological features, the three
// prediction targets and the boundary validation between the JSON wire
// representation and typed feature vectors.
package bio

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Feature names in canonical column order. The order is significant: it is
// the column order of training matrices and of importance vectors.
const (
	FeatureGeneBRCA1     = "gene_BRCA1"
	FeatureGeneTP53      = "gene_TP53"
	FeatureGeneEGFR      = "gene_EGFR"
	FeatureGeneMYC       = "gene_MYC"
	FeatureGeneKRAS      = "gene_KRAS"
	FeatureCellCount     = "cell_count"
	FeatureCellViability = "cell_viability"
	FeaturePHLevel       = "ph_level"
	FeatureTemperature   = "temperature"
	FeatureOxygenLevel   = "oxygen_level"
	FeatureGlucoseLevel  = "glucose_level"
)

// FeatureNames is the canonical ordering of the eleven input features.
var FeatureNames = []string{
	FeatureGeneBRCA1,
	FeatureGeneTP53,
	FeatureGeneEGFR,
	FeatureGeneMYC,
	FeatureGeneKRAS,
	FeatureCellCount,
	FeatureCellViability,
	FeaturePHLevel,
	FeatureTemperature,
	FeatureOxygenLevel,
	FeatureGlucoseLevel,
}

// FeatureCount is the number of input features.
const FeatureCount = 11

// Target identifies one of the three independently trained regression targets.
type Target string

const (
	TargetHealthIndex     Target = "health_index"
	TargetMutationRisk    Target = "mutation_risk"
	TargetAdaptationScore Target = "adaptation_score"
)

// Targets lists the three targets in canonical order.
var Targets = []Target{TargetHealthIndex, TargetMutationRisk, TargetAdaptationScore}

// Description returns the human readable description of the target.
func (t Target) Description() string {
	switch t {
	case TargetHealthIndex:
		return "Health Index (overall biological wellness)"
	case TargetMutationRisk:
		return "Mutation Risk (genetic instability probability)"
	case TargetAdaptationScore:
		return "Adaptation Score (environmental resilience)"
	}
	return string(t)
}

// Validate returns an error for unknown targets.
func (t Target) Validate() error {
	switch t {
	case TargetHealthIndex, TargetMutationRisk, TargetAdaptationScore:
		return nil
	}
	return errors.Errorf("unknown target: %s", t)
}

// FeatureVector is one sample's eleven measurements. Fields are fixed rather
// than keyed by string so a typo can not silently reach a model input.
type FeatureVector struct {
	GeneBRCA1     float64 `json:"gene_BRCA1"`
	GeneTP53      float64 `json:"gene_TP53"`
	GeneEGFR      float64 `json:"gene_EGFR"`
	GeneMYC       float64 `json:"gene_MYC"`
	GeneKRAS      float64 `json:"gene_KRAS"`
	CellCount     float64 `json:"cell_count"`
	CellViability float64 `json:"cell_viability"`
	PHLevel       float64 `json:"ph_level"`
	Temperature   float64 `json:"temperature"`
	OxygenLevel   float64 `json:"oxygen_level"`
	GlucoseLevel  float64 `json:"glucose_level"`
}

// TrainingRecord is one labeled dataset row: a feature vector plus the three
// target values.
type TrainingRecord struct {
	GeneBRCA1       float64 `csv:"gene_BRCA1" json:"gene_BRCA1"`
	GeneTP53        float64 `csv:"gene_TP53" json:"gene_TP53"`
	GeneEGFR        float64 `csv:"gene_EGFR" json:"gene_EGFR"`
	GeneMYC         float64 `csv:"gene_MYC" json:"gene_MYC"`
	GeneKRAS        float64 `csv:"gene_KRAS" json:"gene_KRAS"`
	CellCount       float64 `csv:"cell_count" json:"cell_count"`
	CellViability   float64 `csv:"cell_viability" json:"cell_viability"`
	PHLevel         float64 `csv:"ph_level" json:"ph_level"`
	Temperature     float64 `csv:"temperature" json:"temperature"`
	OxygenLevel     float64 `csv:"oxygen_level" json:"oxygen_level"`
	GlucoseLevel    float64 `csv:"glucose_level" json:"glucose_level"`
	HealthIndex     float64 `csv:"health_index" json:"health_index"`
	MutationRisk    float64 `csv:"mutation_risk" json:"mutation_risk"`
	AdaptationScore float64 `csv:"adaptation_score" json:"adaptation_score"`
}

// Features returns the record's input measurements.
func (r TrainingRecord) Features() FeatureVector {
	return FeatureVector{
		GeneBRCA1:     r.GeneBRCA1,
		GeneTP53:      r.GeneTP53,
		GeneEGFR:      r.GeneEGFR,
		GeneMYC:       r.GeneMYC,
		GeneKRAS:      r.GeneKRAS,
		CellCount:     r.CellCount,
		CellViability: r.CellViability,
		PHLevel:       r.PHLevel,
		Temperature:   r.Temperature,
		OxygenLevel:   r.OxygenLevel,
		GlucoseLevel:  r.GlucoseLevel,
	}
}

// TargetValue returns the record's label for the given target.
func (r TrainingRecord) TargetValue(t Target) float64 {
	switch t {
	case TargetHealthIndex:
		return r.HealthIndex
	case TargetMutationRisk:
		return r.MutationRisk
	case TargetAdaptationScore:
		return r.AdaptationScore
	}
	return math.NaN()
}

// Values returns the measurements in canonical feature order.
func (v FeatureVector) Values() []float64 {
	return []float64{
		v.GeneBRCA1,
		v.GeneTP53,
		v.GeneEGFR,
		v.GeneMYC,
		v.GeneKRAS,
		v.CellCount,
		v.CellViability,
		v.PHLevel,
		v.Temperature,
		v.OxygenLevel,
		v.GlucoseLevel,
	}
}

// ToMap returns the wire representation of the vector.
func (v FeatureVector) ToMap() map[string]float64 {
	values := v.Values()
	m := make(map[string]float64, FeatureCount)
	for i, name := range FeatureNames {
		m[name] = values[i]
	}
	return m
}

// Value returns the named measurement, or false for unknown feature names.
func (v FeatureVector) Value(name string) (float64, bool) {
	for i, n := range FeatureNames {
		if n == name {
			return v.Values()[i], true
		}
	}
	return 0, false
}

// WithFeature returns a copy of the vector with the named measurement
// replaced. Unknown feature names are a validation error.
func (v FeatureVector) WithFeature(name string, value float64) (FeatureVector, error) {
	switch name {
	case FeatureGeneBRCA1:
		v.GeneBRCA1 = value
	case FeatureGeneTP53:
		v.GeneTP53 = value
	case FeatureGeneEGFR:
		v.GeneEGFR = value
	case FeatureGeneMYC:
		v.GeneMYC = value
	case FeatureGeneKRAS:
		v.GeneKRAS = value
	case FeatureCellCount:
		v.CellCount = value
	case FeatureCellViability:
		v.CellViability = value
	case FeaturePHLevel:
		v.PHLevel = value
	case FeatureTemperature:
		v.Temperature = value
	case FeatureOxygenLevel:
		v.OxygenLevel = value
	case FeatureGlucoseLevel:
		v.GlucoseLevel = value
	default:
		return FeatureVector{}, errors.Errorf("unknown feature: %s", name)
	}
	return v, nil
}

// FromMap validates the wire representation and converts it into a typed
// vector. Every one of the eleven features must be present, finite and
// non-negative; biological measurements can not go below zero.
func FromMap(m map[string]float64) (FeatureVector, error) {
	var v FeatureVector
	var missing []string
	for _, name := range FeatureNames {
		value, ok := m[name]
		if !ok {
			missing = append(missing, name)
			continue
		}

		if math.IsNaN(value) || math.IsInf(value, 0) {
			return FeatureVector{}, errors.Errorf("feature %s is not a finite number", name)
		}

		if value < 0 {
			return FeatureVector{}, errors.Errorf("feature %s is negative, biological metrics must be non-negative", name)
		}

		v, _ = v.WithFeature(name, value)
	}

	if len(missing) > 0 {
		return FeatureVector{}, errors.Errorf("missing required features: %s", strings.Join(missing, ", "))
	}
	return v, nil
}

// ReadableFeatureName converts a column name to display form,
// e.g. "cell_viability" to "Cell Viability".
func ReadableFeatureName(name string) string {
	parts := strings.Split(name, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
