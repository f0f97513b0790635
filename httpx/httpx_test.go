/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/pesel"
	"dirpx.dev/pesel/fault"
	"dirpx.dev/pesel/mapper"
)

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) View {
	t.Helper()
	var v View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestWrite_Faults(t *testing.T) {
	w := Writer{Mapper: mapper.New()}

	tests := []struct {
		name       string
		input      string
		wantStatus int
		wantKind   string
	}{
		{"too short", "123", http.StatusBadRequest, "size"},
		{"non-digit", "4405140145a", http.StatusBadRequest, "bad_format"},
		{"bad band", "44951201458", http.StatusUnprocessableEntity, "dob_out_of_range"},
		{"day 32", "44053201458", http.StatusUnprocessableEntity, "invalid_dob"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pesel.Parse(tt.input)
			require.Error(t, err)

			rec := httptest.NewRecorder()
			w.Write(rec, err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			v := decodeView(t, rec)
			assert.Equal(t, tt.wantKind, v.Kind)
			wantKind, _ := fault.KindOf(err)
			assert.Equal(t, fault.New(wantKind).Message, v.Message)
		})
	}
}

func TestWrite_RespectsOverrides(t *testing.T) {
	w := Writer{Mapper: mapper.New(
		mapper.WithHTTPOverride(fault.DateRange, http.StatusBadRequest),
	)}

	rec := httptest.NewRecorder()
	w.Write(rec, fault.ErrDateRange)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWrite_ForeignError(t *testing.T) {
	w := Writer{Mapper: mapper.New()}

	rec := httptest.NewRecorder()
	w.Write(rec, errors.New("database exploded"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	v := decodeView(t, rec)
	assert.Equal(t, "internal", v.Kind)
	assert.NotContains(t, v.Message, "database", "foreign error text must not leak")
}

func TestWrite_NilErrorWritesNothing(t *testing.T) {
	w := Writer{Mapper: mapper.New()}

	rec := httptest.NewRecorder()
	w.Write(rec, nil)

	assert.Equal(t, http.StatusOK, rec.Code) // recorder default, untouched
	assert.Zero(t, rec.Body.Len())
}
