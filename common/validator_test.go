// file: common/validator_test.go

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-waitlist-api/model"
)

func TestValidateStruct_Signup(t *testing.T) {
	t.Run("valid payload produces no errors", func(t *testing.T) {
		req := model.SignupRequest{
			Name:  "Sarah Connor",
			Email: "sarah@sky.net",
			Role:  model.RoleClient,
		}

		errs := ValidateStruct(req)

		assert.Nil(t, errs)
	})

	t.Run("missing name is reported as required", func(t *testing.T) {
		req := model.SignupRequest{
			Name:  "",
			Email: "sarah@sky.net",
			Role:  model.RoleClient,
		}

		errs := ValidateStruct(req)

		assert.Len(t, errs, 1)
		assert.Equal(t, "name", errs[0].Field)
		assert.Equal(t, "required", errs[0].Rule)
		assert.Equal(t, "name is required", errs[0].Message)
	})

	t.Run("malformed email fails the basic shape check", func(t *testing.T) {
		req := model.SignupRequest{
			Name:  "Sarah Connor",
			Email: "not-an-email",
			Role:  model.RoleExpert,
		}

		errs := ValidateStruct(req)

		assert.Len(t, errs, 1)
		assert.Equal(t, "email", errs[0].Field)
		assert.Equal(t, "basic_email", errs[0].Rule)
		assert.Equal(t, "a valid email is required", errs[0].Message)
	})

	t.Run("minimal local@domain shape passes", func(t *testing.T) {
		// The check promises only something@something, nothing stricter.
		req := model.SignupRequest{
			Name:  "Sarah Connor",
			Email: "a@b",
			Role:  model.RoleClient,
		}

		assert.Nil(t, ValidateStruct(req))
	})

	t.Run("email with spaces is rejected", func(t *testing.T) {
		req := model.SignupRequest{
			Name:  "Sarah Connor",
			Email: "sarah @sky.net",
			Role:  model.RoleClient,
		}

		errs := ValidateStruct(req)

		assert.Len(t, errs, 1)
		assert.Equal(t, "email", errs[0].Field)
	})

	t.Run("every failing field is reported", func(t *testing.T) {
		req := model.SignupRequest{}

		errs := ValidateStruct(req)

		assert.Len(t, errs, 3)
		fields := []string{errs[0].Field, errs[1].Field, errs[2].Field}
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "role")
	})

	t.Run("unknown role fails the oneof rule", func(t *testing.T) {
		req := model.SignupRequest{
			Name:  "Sarah Connor",
			Email: "sarah@sky.net",
			Role:  model.Role("admin"),
		}

		errs := ValidateStruct(req)

		assert.Len(t, errs, 1)
		assert.Equal(t, "role", errs[0].Field)
		assert.Equal(t, "oneof", errs[0].Rule)
	})
}
