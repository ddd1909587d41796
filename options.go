/*
 * options.go, part of goesp.
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

import "gopkg.in/ini.v1"

//Options controls the labels used when extracting a Topology and the
//version the consumer toolkit reports. The defaults reproduce the fixed
//schema most consumers expect; change them only if you know the consumer
//agrees.
type Options struct {
	NamePrefix     string //prepended to the type id to form atom names
	TypePrefix     string //prepended to the type id to form type labels
	Segid          string //the single segment identifier of the system
	Resname        string //the single residue name of the system
	ToolkitVersion string //the version the consumer toolkit reports
}

//DefaultOptions returns the options matching the fixed consumer schema.
func DefaultOptions() *Options {
	return &Options{
		NamePrefix:     "A",
		TypePrefix:     "T",
		Segid:          "System",
		Resname:        "R",
		ToolkitVersion: MinToolkitVersion,
	}
}

//LoadOptions reads options from the [stream] section of an ini file.
//Missing keys keep their default values.
func LoadOptions(path string) (*Options, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	o := DefaultOptions()
	sec := file.Section("stream")
	o.NamePrefix = sec.Key("NamePrefix").MustString(o.NamePrefix)
	o.TypePrefix = sec.Key("TypePrefix").MustString(o.TypePrefix)
	o.Segid = sec.Key("Segid").MustString(o.Segid)
	o.Resname = sec.Key("Resname").MustString(o.Resname)
	o.ToolkitVersion = sec.Key("ToolkitVersion").MustString(o.ToolkitVersion)
	return o, nil
}
