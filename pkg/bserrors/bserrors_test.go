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

package bserrors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidation(t *testing.T) {
	assert := assert.New(t)

	cause := errors.New("bad input")
	err := Validation(cause)
	assert.Error(err)
	assert.Equal("bad input", err.Error())
	assert.True(IsValidation(err))
	assert.Equal(cause, errors.Unwrap(err))

	assert.NoError(Validation(nil))
}

func TestValidationf(t *testing.T) {
	assert := assert.New(t)

	err := Validationf("feature %s out of range", "ph_level")
	assert.True(IsValidation(err))
	assert.Equal("feature ph_level out of range", err.Error())
}

func TestIsValidation(t *testing.T) {
	assert := assert.New(t)

	assert.False(IsValidation(errors.New("boom")))
	assert.False(IsValidation(nil))

	// Wrapping preserves classification.
	wrapped := errors.Wrap(Validationf("bad"), "analyze")
	assert.True(IsValidation(wrapped))
}
