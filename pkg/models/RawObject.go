package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var (
	ErrNotObject = fmt.Errorf("json document is not an object")
)

type RawMember struct {
	Name  string
	Value json.RawMessage
}

/*
RawObject is a JSON object decoded without losing member order. Values
are left raw so each consumer can decide which shapes it accepts. A
repeated member name keeps its first position and its last value. The
zero value is an empty object.
*/
type RawObject struct {
	members *orderedmap.OrderedMap[string, json.RawMessage]
}

func (o *RawObject) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)

	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ErrNotObject
	}

	members := orderedmap.New[string, json.RawMessage]()

	if err := members.UnmarshalJSON(trimmed); err != nil {
		return fmt.Errorf("error decoding object members: %w", err)
	}

	o.members = members
	return nil
}

// Members returns every member in document order.
func (o RawObject) Members() []RawMember {
	result := make([]RawMember, 0, o.Len())

	if o.members == nil {
		return result
	}

	for pair := o.members.Oldest(); pair != nil; pair = pair.Next() {
		result = append(result, RawMember{Name: pair.Key, Value: pair.Value})
	}

	return result
}

func (o RawObject) Names() []string {
	result := make([]string, 0, o.Len())

	for _, member := range o.Members() {
		result = append(result, member.Name)
	}

	return result
}

func (o RawObject) Get(name string) (json.RawMessage, bool) {
	if o.members == nil {
		return nil, false
	}

	return o.members.Get(name)
}

func (o RawObject) Len() int {
	if o.members == nil {
		return 0
	}

	return o.members.Len()
}
