package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestOpenDir(t *testing.T) {
	root := t.TempDir()
	inbox := filepath.Join(root, "messages", "inbox", "weekendcrew_10203040")
	if err := os.MkdirAll(inbox, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(inbox, "message_1.json"), []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := Open(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "messages/inbox/weekendcrew_10203040/message_1.json"
	if got, ok := files[want]; !ok || string(got) != "{}" {
		t.Errorf("files[%q] = %q, %v", want, got, ok)
	}
}

func TestOpenZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.zip")
	out, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(out)
	w, err := zw.Create("messages/inbox/crew_99/message_1.html")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("<html></html>")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := out.Close(); err != nil {
		t.Fatal(err)
	}

	files, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(files["messages/inbox/crew_99/message_1.html"]); got != "<html></html>" {
		t.Errorf("zip entry = %q", got)
	}
}

func TestOpen_MissingPath(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestMessageFiles(t *testing.T) {
	files := FileSet{
		"messages/inbox/crew_1/message_10.json":  []byte("ten"),
		"messages/inbox/crew_1/message_2.json":   []byte("two"),
		"messages/inbox/crew_1/message_1.html":   []byte("one"),
		"messages/inbox/crew_1/photos/img.jpg":   []byte("jpg"),
		"messages/archived/old_1/message_1.json": []byte("archived"),
	}

	got := MessageFiles(files)
	var paths []string
	for _, f := range got {
		paths = append(paths, f.Path)
	}
	want := []string{
		"messages/inbox/crew_1/message_1.html",
		"messages/inbox/crew_1/message_2.json",
		"messages/inbox/crew_1/message_10.json",
	}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("MessageFiles order = %v, want %v", paths, want)
	}
	if !got[0].IsHTML() || got[1].IsHTML() {
		t.Error("IsHTML must follow the file extension")
	}
}

func TestChats(t *testing.T) {
	files := FileSet{
		"messages/inbox/weekendcrew_10203040/message_1.json": nil,
		"messages/inbox/weekendcrew_10203040/message_2.json": nil,
		"messages/inbox/bookclub_555/message_1.html":         nil,
		"other/readme.txt":                                   nil,
	}

	got := Chats(files)
	want := []string{"bookclub", "weekendcrew"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Chats = %v, want %v", got, want)
	}
}

func TestFilterChat(t *testing.T) {
	files := FileSet{
		"messages/inbox/weekend_crew_1/message_1.json": []byte("a"),
		"messages/inbox/bookclub_2/message_1.json":     []byte("b"),
	}

	got := FilterChat(files, "weekend crew")
	if len(got) != 1 {
		t.Fatalf("len(filtered) = %d, want 1", len(got))
	}
	if _, ok := got["messages/inbox/weekend_crew_1/message_1.json"]; !ok {
		t.Error("underscored folder spelling did not match")
	}
}

func TestChatName(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		title string
		want  string
	}{
		{"title wins", "messages/inbox/crew_1/message_1.json", "Weekend Crew", "Weekend Crew"},
		{"from folder", "messages/inbox/weekendcrew_10203040/message_1.json", "", "weekendcrew"},
		{"backslash path", `messages\inbox\crew_1\message_1.json`, "", "crew"},
		{"no inbox segment", "somewhere/else.json", "", "Unknown Chat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChatName(tt.path, tt.title); got != tt.want {
				t.Errorf("ChatName(%q, %q) = %q, want %q", tt.path, tt.title, got, tt.want)
			}
		})
	}
}
