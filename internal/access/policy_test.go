package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckOwnerMayMutate(t *testing.T) {
	assert.Equal(t, Allow, Check(ResourcePost, OpEdit, 7, 7))
	assert.Equal(t, Allow, Check(ResourcePost, OpDelete, 7, 7))
	assert.Equal(t, Allow, Check(ResourceComment, OpEdit, 7, 7))
	assert.Equal(t, Allow, Check(ResourceComment, OpDelete, 7, 7))
	assert.Equal(t, Allow, Check(ResourceProfile, OpEdit, 7, 7))
}

func TestCheckPostEditByNonOwnerIsSoftDenial(t *testing.T) {
	// Edit sends the actor back to the detail page, no error shown
	assert.Equal(t, DenyRedirectPost, Check(ResourcePost, OpEdit, 7, 8))
}

func TestCheckPostDeleteByNonOwnerIsHardDenial(t *testing.T) {
	assert.Equal(t, DenyForbidden, Check(ResourcePost, OpDelete, 7, 8))
}

func TestCheckCommentMutationByNonOwnerRedirects(t *testing.T) {
	assert.Equal(t, DenyRedirectPost, Check(ResourceComment, OpEdit, 7, 8))
	assert.Equal(t, DenyRedirectPost, Check(ResourceComment, OpDelete, 7, 8))
}

func TestCheckProfileEditByOtherUserIsForbidden(t *testing.T) {
	assert.Equal(t, DenyForbidden, Check(ResourceProfile, OpEdit, 7, 8))
}

func TestCheckUnauthenticatedAlwaysGoesToLogin(t *testing.T) {
	// Authentication is checked before ownership, so an anonymous actor is
	// sent to login instead of a 403, whatever the resource
	for _, res := range []Resource{ResourcePost, ResourceComment} {
		for _, op := range []Operation{OpCreate, OpEdit, OpDelete} {
			assert.Equal(t, DenyRedirectLogin, Check(res, op, 7, AnonymousID),
				"resource=%v op=%v", res, op)
		}
	}
	assert.Equal(t, DenyRedirectLogin, Check(ResourceProfile, OpEdit, 7, AnonymousID))
}

func TestCheckCreateNeedsNoOwnership(t *testing.T) {
	assert.Equal(t, Allow, Check(ResourcePost, OpCreate, AnonymousID, 8))
	assert.Equal(t, Allow, Check(ResourceComment, OpCreate, AnonymousID, 8))
}

func TestCheckUnlistedCombinationDenies(t *testing.T) {
	// Profile resources have no create operation in the table
	assert.Equal(t, DenyForbidden, Check(ResourceProfile, OpCreate, 7, 7))
}
