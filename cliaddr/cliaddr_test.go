package cliaddr

import "testing"

func TestValidate(t *testing.T) {
	cases := []struct {
		addr string
		ok   bool
	}{
		{"127.0.0.1:9898", true},
		{"localhost:8080", true},
		{"my-host.example.com:1", true},
		{"missing-port", false},
		{"127.0.0.1:", false},
		{"127.0.0.1:123456", false},
		{"host name:80", false},
	}
	for _, c := range cases {
		err := Validate(c.addr)
		if c.ok && err != nil {
			t.Errorf("Validate(%q) = %v, want nil", c.addr, err)
		}
		if !c.ok && err == nil {
			t.Errorf("Validate(%q) = nil, want an error", c.addr)
		}
	}
}

func TestDefaultAddressIsValid(t *testing.T) {
	if err := Validate(DefaultAddress); err != nil {
		t.Errorf("DefaultAddress %q failed validation: %v", DefaultAddress, err)
	}
}
