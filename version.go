/*
 * version.go, part of goesp.
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
	"strconv"
	"strings"
)

//MinToolkitVersion is the oldest consumer-toolkit version whose attribute
//schema matches what this bridge produces.
const MinToolkitVersion = "0.16"

//CheckVersion returns a fatal *VersionError if the consumer toolkit version
//v predates MinToolkitVersion. It is called by the Stream and Reader
//constructors before any particle data is touched.
func CheckVersion(v string) error {
	if !versionAtLeast(v, MinToolkitVersion) {
		return &VersionError{version: v, min: MinToolkitVersion}
	}
	return nil
}

//versionAtLeast compares dotted version strings loosely: components are
//compared as integers, pairwise, with missing components counting as zero.
//Anything non-numeric in a component is ignored from that point on, so
//"0.16.2-dev" compares as 0.16.2.
func versionAtLeast(v, min string) bool {
	vc := strings.Split(v, ".")
	mc := strings.Split(min, ".")
	n := len(vc)
	if len(mc) > n {
		n = len(mc)
	}
	for i := 0; i < n; i++ {
		a := versionComponent(vc, i)
		b := versionComponent(mc, i)
		if a != b {
			return a > b
		}
	}
	return true
}

func versionComponent(c []string, i int) int {
	if i >= len(c) {
		return 0
	}
	s := c[i]
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0 //can't happen, we only kept digits
	}
	return n
}
