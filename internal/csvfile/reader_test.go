package csvfile

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/croissant/pkg/croissant"
)

func TestReadColumns(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     Options
		headers  []string
		firstRow []string
	}{
		{
			name:     "headers and row",
			input:    "id,age,active\n1,23,true\n2,31,false\n",
			headers:  []string{"id", "age", "active"},
			firstRow: []string{"1", "23", "true"},
		},
		{
			name:    "headers only",
			input:   "id,age\n",
			headers: []string{"id", "age"},
		},
		{
			name:     "cells trimmed",
			input:    " id , age \n 1 , 23 \n",
			headers:  []string{"id", "age"},
			firstRow: []string{"1", "23"},
		},
		{
			name:     "short first row",
			input:    "a,b,c\n1\n",
			headers:  []string{"a", "b", "c"},
			firstRow: []string{"1"},
		},
		{
			name:     "semicolon delimiter",
			input:    "a;b\n1;2\n",
			opts:     Options{Delimiter: ';'},
			headers:  []string{"a", "b"},
			firstRow: []string{"1", "2"},
		},
		{
			name:     "quoted cells",
			input:    "\"name\",\"note\"\n\"Ann\",\"a, b\"\n",
			headers:  []string{"name", "note"},
			firstRow: []string{"Ann", "a, b"},
		},
		{
			name:     "byte order mark stripped",
			input:    "\ufeffid,age\n1,2\n",
			headers:  []string{"id", "age"},
			firstRow: []string{"1", "2"},
		},
		{
			name:  "empty input",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers, firstRow, err := ReadColumns(strings.NewReader(tt.input), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.headers, headers)
			assert.Equal(t, tt.firstRow, firstRow)
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestReadColumns_ReadError(t *testing.T) {
	_, _, err := ReadColumns(failingReader{}, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, croissant.ErrInvalidCSV)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestCheckHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		wantErr string
	}{
		{"valid", []string{"id", "age"}, ""},
		{"no headers", nil, "no headers"},
		{"empty header", []string{"id", " ", "age"}, "empty header at column 2"},
		{"duplicate", []string{"id", "age", "id"}, "duplicate header: id"},
		{"case-insensitive duplicate", []string{"Name", "NAME"}, "duplicate header: NAME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckHeaders(tt.headers)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, croissant.ErrInvalidCSV)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
