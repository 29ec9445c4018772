/*
Copyright 2024 The Vitess Authors.

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

package log

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRotateMaxSizeFlag(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	f := fs.Lookup("log_rotate_max_size")
	require.NotNil(t, f)
	assert.Equal(t, "uint64", f.Value.Type())

	require.NoError(t, fs.Parse([]string{"--log_rotate_max_size=1048576"}))
	assert.Equal(t, "1048576", f.Value.String())

	require.Error(t, f.Value.Set("not-a-number"))
}
