// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hostOptions struct {
	Command string        `default:"blender --background"`
	Timeout time.Duration `default:"10m"`
	Devices []string      `default:"optix, cuda,cpu"`
	Untagged string
}

type toolConfig struct {
	Root    string  `default:"."`
	Samples int     `default:"4"`
	Ratio   float64 `default:"0.5"`
	DryRun  bool    `default:"true"`
	Host    hostOptions
	hidden  int `default:"3"`
}

func TestSetFromDefaultTags(t *testing.T) {
	c := &toolConfig{}
	require.NoError(t, SetFromDefaultTags(c))
	assert.Equal(t, ".", c.Root)
	assert.Equal(t, 4, c.Samples)
	assert.Equal(t, 0.5, c.Ratio)
	assert.True(t, c.DryRun)
	assert.Equal(t, "blender --background", c.Host.Command)
	assert.Equal(t, 10*time.Minute, c.Host.Timeout)
	assert.Equal(t, []string{"optix", "cuda", "cpu"}, c.Host.Devices)
	assert.Equal(t, "", c.Host.Untagged)
	assert.Equal(t, 0, c.hidden)

	assert.NoError(t, SetFromDefaultTags(nil))
	assert.Error(t, SetFromDefaultTags(new(int)))
}

func TestSetFromDefaultTagsBadValue(t *testing.T) {
	type bad struct {
		N int `default:"four"`
	}
	assert.Error(t, SetFromDefaultTags(&bad{}))
}

func TestPointerHelpers(t *testing.T) {
	var i int
	pp := &i
	assert.Equal(t, reflect.TypeOf(int(0)), NonPointerType(reflect.TypeOf(&pp)))
	assert.Equal(t, reflect.Int, NonPointerValue(reflect.ValueOf(&pp)).Kind())
	assert.Equal(t, reflect.Pointer, PointerValue(reflect.ValueOf(3)).Kind())
	assert.True(t, AnyIsNil((*int)(nil)))
	assert.False(t, AnyIsNil(3))
}
