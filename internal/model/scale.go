package model

import (
	"bytes"
	"encoding/json"
)

// Step is one named entry of an ordered scale.
type Step struct {
	Name  string
	Value string
}

// Scale is an ordered name -> value mapping. It marshals to a JSON object
// whose keys keep the declaration order.
type Scale []Step

// Get returns the value stored under name.
func (s Scale) Get(name string) (string, bool) {
	for _, step := range s {
		if step.Name == name {
			return step.Value, true
		}
	}
	return "", false
}

// Names returns the step names in order.
func (s Scale) Names() []string {
	names := make([]string, 0, len(s))
	for _, step := range s {
		names = append(names, step.Name)
	}
	return names
}

// MarshalJSON implements json.Marshaler.
func (s Scale) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, step := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(step.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(step.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
