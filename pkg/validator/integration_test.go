package validator_test

import (
	"fmt"
	"regexp"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqschema/pkg/schema"
	"github.com/dmitrymomot/reqschema/pkg/validator"
)

func orderSchema() schema.Schema {
	return schema.MustNew(
		schema.Field{Name: "email", Rule: schema.StringRule{Match: schema.PatternEmail, Case: schema.CaseLower}},
		schema.Field{Name: "code", Rule: schema.StringRule{RegExp: regexp.MustCompile(`^[A-Z]{3}-\d+$`)}},
		schema.Field{Name: "tags", Rule: schema.StringRule{Base: schema.Base{List: true, Optional: true}, Case: schema.CaseUpper}},
		schema.Field{Name: "total", Rule: schema.NumberRule{Min: schema.Bound(0)}},
		schema.Field{Name: "gift", Rule: schema.BoolRule{Base: schema.Base{Optional: true}}},
		schema.Field{Name: "deliver_on", Rule: schema.DateRule{}},
		schema.Field{Name: "placed_at", Rule: schema.DateTimeRule{Base: schema.Base{List: true}}},
		schema.Field{Name: "shipping", Rule: schema.ObjectRule{Schema: schema.MustNew(
			schema.Field{Name: "city", Rule: schema.StringRule{NotEmpty: true}},
			schema.Field{Name: "zip", Rule: schema.NumberRule{Base: schema.Base{Optional: true}, IntegerOnly: true}},
			schema.Field{Name: "lines", Rule: schema.ObjectRule{
				Base: schema.Base{List: true},
				Schema: schema.MustNew(
					schema.Field{Name: "qty", Rule: schema.NumberRule{Min: schema.Bound(1), IntegerOnly: true}},
				),
			}},
		)}},
	)
}

func orderPayload() map[string]any {
	return map[string]any{
		"email":      "Buyer@Example.com",
		"code":       "ORD-42",
		"tags":       []any{"gift", "fast"},
		"total":      "99.90",
		"deliver_on": "2024-02-29",
		"placed_at":  []any{"2024-02-01 10:00:00"},
		"shipping": map[string]any{
			"city":  "Berlin",
			"zip":   10115,
			"lines": []any{map[string]any{"qty": "2"}},
		},
		"ignored": "value",
	}
}

var regexpComparer = cmp.Comparer(func(a, b *regexp.Regexp) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
})

func TestValidate_Order(t *testing.T) {
	t.Parallel()

	out, err := validator.Validate(orderSchema(), orderPayload())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"email", "code", "tags", "total", "deliver_on", "placed_at", "shipping"}, keys(out))
	assert.Equal(t, "buyer@example.com", out["email"])
	assert.Equal(t, []any{"GIFT", "FAST"}, out["tags"])
	assert.Equal(t, 99.9, out["total"])
	assert.Equal(t, map[string]any{
		"city":  "Berlin",
		"zip":   10115.0,
		"lines": []any{map[string]any{"qty": 2.0}},
	}, out["shipping"])
}

func TestValidate_DoesNotMutateSchema(t *testing.T) {
	t.Parallel()

	s := orderSchema()
	snapshot := orderSchema()

	_, err := validator.Validate(s, orderPayload())
	require.NoError(t, err)

	bad := orderPayload()
	bad["shipping"].(map[string]any)["lines"] = []any{map[string]any{"qty": 0}}
	_, err = validator.Validate(s, bad)
	require.Error(t, err)

	if diff := cmp.Diff(snapshot, s, regexpComparer); diff != "" {
		t.Errorf("schema changed during validation (-want +got):\n%s", diff)
	}

	r, _ := s.Lookup("placed_at")
	assert.True(t, schema.IsList(r), "list flag must survive element validation")
}

func TestValidate_Idempotent(t *testing.T) {
	t.Parallel()

	s := orderSchema()

	first, err := validator.Validate(s, orderPayload())
	require.NoError(t, err)

	second, err := validator.Validate(s, first)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second pass changed the result (-first +second):\n%s", diff)
	}
}

func TestValidate_Concurrent(t *testing.T) {
	t.Parallel()

	v := validator.New(orderSchema())

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := range 32 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			payload := orderPayload()
			payload["total"] = fmt.Sprintf("%d", i)
			if i%2 == 1 {
				payload["total"] = "-1"
			}

			_, err := v.Validate(payload)
			switch {
			case i%2 == 0 && err != nil:
				errs <- fmt.Errorf("payload %d: unexpected error: %w", i, err)
			case i%2 == 1 && !validator.IsValidationError(err):
				errs <- fmt.Errorf("payload %d: expected validation error, got %v", i, err)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestValidate_LoadedSchema(t *testing.T) {
	t.Parallel()

	s, err := schema.Parse([]byte(`
user:
  type: object
  validator:
    id:
      type: string
      match: UUID
    roles:
      type: string
      list: true
      case: lower
    age:
      type: number
      min: 1
      max: 10
      allowFloat: false
`))
	require.NoError(t, err)

	out, err := validator.Validate(s, map[string]any{"user": map[string]any{
		"id":    "123e4567-e89b-12d3-a456-426614174000",
		"roles": []any{"ADMIN"},
		"age":   "7",
	}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"user": map[string]any{
		"id":    "123e4567-e89b-12d3-a456-426614174000",
		"roles": []any{"admin"},
		"age":   7.0,
	}}, out)

	_, err = validator.Validate(s, map[string]any{"user": map[string]any{
		"id":    "123e4567-e89b-12d3-a456-426614174000",
		"roles": []any{},
		"age":   "2.5",
	}})
	verr := validator.ExtractValidationError(err)
	require.NotNil(t, verr)
	assert.Equal(t, "'age': floats not allowed", verr.Error())
	assert.Equal(t, "user.age", verr.Path)
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
