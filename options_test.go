/*
 * options_test.go, part of goesp.
 *
 * Copyright 2017 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package esp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadOptions(t *testing.T) {
	conf := `[stream]
NamePrefix = B
Segid = MEMB
ToolkitVersion = 0.19.2
`
	path := filepath.Join(t.TempDir(), "goesp.ini")
	if err := os.WriteFile(path, []byte(conf), 0644); err != nil {
		t.Fatal(err)
	}
	o, err := LoadOptions(path)
	assert.NoError(t, err)
	assert.Equal(t, "B", o.NamePrefix, "value from the file")
	assert.Equal(t, "MEMB", o.Segid, "value from the file")
	assert.Equal(t, "0.19.2", o.ToolkitVersion, "value from the file")
	assert.Equal(t, "T", o.TypePrefix, "missing keys keep defaults")
	assert.Equal(t, "R", o.Resname, "missing keys keep defaults")
}

func TestLoadOptionsMissingFile(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "nope.ini"))
	assert.Error(t, err)
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, "A", o.NamePrefix)
	assert.Equal(t, "T", o.TypePrefix)
	assert.Equal(t, "System", o.Segid)
	assert.Equal(t, "R", o.Resname)
	assert.NoError(t, CheckVersion(o.ToolkitVersion), "defaults must pass the version guard")
}
