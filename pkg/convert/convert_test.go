// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/panelkit/pkg/convert"
)

/*
TestSuffixInt parses tab ordinals leniently.
*/
func TestSuffixInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"zero", "cmp0", 0},
		{"multi_digit", "cmp12", 12},
		{"no_prefix", "7", 7},
		{"garbage", "cmpabc", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convert.SuffixInt(tt.value, "cmp"))
		})
	}
}

/*
TestToString_ToBool reads loosely-typed config values.
*/
func TestToString_ToBool(t *testing.T) {
	assert.Equal(t, "west", convert.ToString("west"))
	assert.Equal(t, "300", convert.ToString(300))
	assert.Equal(t, "2.5", convert.ToString(2.5))
	assert.Equal(t, "9007199254740993", convert.ToString(json.Number("9007199254740993")))
	assert.Equal(t, "", convert.ToString(nil))
	assert.Equal(t, "", convert.ToString([]int{1}))

	assert.True(t, convert.ToBool(true))
	assert.True(t, convert.ToBool("true"))
	assert.False(t, convert.ToBool("nope"))
	assert.False(t, convert.ToBool(1))
}
