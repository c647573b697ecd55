package settable

import (
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"
)

// Requirement builds a selector holding a single requirement on key.
// Exists and DoesNotExist take no values, In and NotIn take one or more,
// the comparison operators take exactly one.
func Requirement(key string, op selection.Operator, values ...string) (labels.Selector, error) {
	req, err := labels.NewRequirement(key, op, values)
	if err != nil {
		return nil, err
	}
	return labels.NewSelector().Add(*req), nil
}
