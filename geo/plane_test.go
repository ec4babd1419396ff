// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package geo

import "testing"

func TestPlaneSide(t *testing.T) {
	pl := unitPlane(0, 0, 1, 0) // z = 0
	above := pt(0, 0, 1)
	below := pt(0, 0, -1)
	on := pt(5, 5, 0)
	if pl.Side(above) <= 0 {
		t.Error("expected point above plane to be on the positive side")
	}
	if pl.Side(below) >= 0 {
		t.Error("expected point below plane to be on the negative side")
	}
	if !pl.Contains(on) {
		t.Error("expected point on plane to be contained")
	}
}

func TestPlaneFromFloatToPlaneRoundTrip(t *testing.T) {
	exact := PlaneFromFloat(0, 0, 1, -2)
	inexact := exact.ToPlane()
	if inexact.Normal.Z != 1 || inexact.Offset != -2 {
		t.Errorf("got normal=%+v offset=%v", inexact.Normal, inexact.Offset)
	}
}
