// Copyright (c) 2026 Smriti. All rights reserved.
// Author: rafid.hsn.bd@gmail.com

package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitted(t *testing.T) {
	cases := []struct {
		name             string
		isAdministrative bool
		requested        Status
		want             Status
	}{
		{"visitor requesting approved gets pending", false, StatusApproved, StatusPending},
		{"visitor requesting rejected gets pending", false, StatusRejected, StatusPending},
		{"visitor with empty status gets pending", false, "", StatusPending},
		{"admin keeps requested status", true, StatusRejected, StatusRejected},
		{"admin with empty status defaults to approved", true, "", StatusApproved},
		{"admin with garbage status defaults to approved", true, "SHIPPED", StatusApproved},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, Submitted(testCase.isAdministrative, testCase.requested))
		})
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusApproved.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, Status("DRAFT").Valid())
	assert.False(t, Status("").Valid())
}
