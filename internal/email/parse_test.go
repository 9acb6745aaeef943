package email

import (
	"testing"
)

func TestParse_JSON(t *testing.T) {
	raw := []byte(`{
  "author": "alice@corp.example",
  "recipient": "bob@corp.example",
  "subject": "Quick question",
  "thread_body": "Do you have the Q3 numbers?"
}`)
	e, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Author != "alice@corp.example" {
		t.Errorf("author = %q", e.Author)
	}
	if e.Recipient != "bob@corp.example" {
		t.Errorf("recipient = %q", e.Recipient)
	}
	if e.Subject != "Quick question" {
		t.Errorf("subject = %q", e.Subject)
	}
	if e.ThreadBody != "Do you have the Q3 numbers?" {
		t.Errorf("body = %q", e.ThreadBody)
	}
}

func TestParse_JSONMalformed(t *testing.T) {
	if _, err := Parse([]byte(`{"author": `)); err == nil {
		t.Fatal("expected error for malformed json")
	}
}

func TestParse_Empty(t *testing.T) {
	if _, err := Parse([]byte("  \n \t")); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestParse_Plain(t *testing.T) {
	raw := []byte(`From: alice@corp.example
To: bob@corp.example
Subject: Quick question

Do you have the Q3 numbers?
They were due yesterday.`)
	e, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Author != "alice@corp.example" {
		t.Errorf("author = %q", e.Author)
	}
	if e.Recipient != "bob@corp.example" {
		t.Errorf("recipient = %q", e.Recipient)
	}
	if e.Subject != "Quick question" {
		t.Errorf("subject = %q", e.Subject)
	}
	want := "Do you have the Q3 numbers?\nThey were due yesterday."
	if e.ThreadBody != want {
		t.Errorf("body = %q, want %q", e.ThreadBody, want)
	}
}

func TestParse_PlainCaseInsensitiveHeaders(t *testing.T) {
	raw := []byte("from: a@b.c\nto: d@e.f\nsubject: hi\n\nbody")
	e, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Author != "a@b.c" || e.Recipient != "d@e.f" || e.Subject != "hi" || e.ThreadBody != "body" {
		t.Errorf("unexpected parse: %+v", e)
	}
}

func TestParse_NoHeadersBecomesBody(t *testing.T) {
	raw := []byte("just some text\nwith no headers at all")
	e, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Author != "" || e.Subject != "" {
		t.Errorf("expected empty headers, got: %+v", e)
	}
	if e.ThreadBody != "just some text\nwith no headers at all" {
		t.Errorf("body = %q", e.ThreadBody)
	}
}

func TestParse_HTMLBodyStripped(t *testing.T) {
	raw := []byte(`{"author": "a@b.c", "recipient": "d@e.f", "subject": "s", "thread_body": "<html><body><p>Hello</p><script>evil()</script><p>World</p></body></html>"}`)
	e, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Hello\nWorld"
	if e.ThreadBody != want {
		t.Errorf("body = %q, want %q", e.ThreadBody, want)
	}
}
