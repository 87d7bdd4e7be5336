package actions

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitRepository(t *testing.T) {
	tests := []struct {
		name      string
		repo      string
		wantOwner string
		wantName  string
		wantErr   bool
	}{
		{"valid", "rubrical-studios/gh-autobump", "rubrical-studios", "gh-autobump", false},
		{"empty", "", "", "", true},
		{"no slash", "justaname", "", "", true},
		{"empty owner", "/repo", "", "", true},
		{"empty name", "owner/", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, name, err := Env{Repository: tt.repo}.SplitRepository()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q, got nil", tt.repo)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if owner != tt.wantOwner || name != tt.wantName {
				t.Errorf("Got %s/%s, want %s/%s", owner, name, tt.wantOwner, tt.wantName)
			}
		})
	}
}

func TestWriteOutputs_AppendsAndEchoes(t *testing.T) {
	// ARRANGE: An output file that already has a line in it
	path := filepath.Join(t.TempDir(), "github_output")
	if err := os.WriteFile(path, []byte("existing=1\n"), 0644); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	env := Env{OutputPath: path}
	var stdout bytes.Buffer

	// ACT
	err := env.WriteOutputs(&stdout, []Output{
		{Key: "old_tag", Value: "v1.2.3"},
		{Key: "new_tag", Value: "v1.2.4"},
		{Key: "bumped", Value: "patch"},
	})

	// ASSERT: File appended in order, stdout echoed the same lines
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	got, _ := os.ReadFile(path)
	want := "existing=1\nold_tag=v1.2.3\nnew_tag=v1.2.4\nbumped=patch\n"
	if string(got) != want {
		t.Errorf("Output file mismatch:\ngot:  %q\nwant: %q", string(got), want)
	}
	if stdout.String() != "old_tag=v1.2.3\nnew_tag=v1.2.4\nbumped=patch\n" {
		t.Errorf("Stdout mismatch: %q", stdout.String())
	}
}

func TestWriteOutputs_NoOutputPath_StillEchoes(t *testing.T) {
	var stdout bytes.Buffer

	err := Env{}.WriteOutputs(&stdout, []Output{{Key: "bumped", Value: "major"}})

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if stdout.String() != "bumped=major\n" {
		t.Errorf("Stdout mismatch: %q", stdout.String())
	}
}

func TestWriteOutputs_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "github_output")
	var stdout bytes.Buffer

	err := Env{OutputPath: path}.WriteOutputs(&stdout, []Output{{Key: "k", Value: "v"}})

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected file to exist: %v", err)
	}
	if string(got) != "k=v\n" {
		t.Errorf("Unexpected content: %q", string(got))
	}
}

func TestEnvFromOS_WorkspaceDefault(t *testing.T) {
	t.Setenv("GITHUB_WORKSPACE", "")
	t.Setenv("GITHUB_REPOSITORY", "o/r")
	t.Setenv("GITHUB_OUTPUT", "/tmp/out")

	env := EnvFromOS()

	if env.Workspace != DefaultWorkspace {
		t.Errorf("Expected default workspace, got %q", env.Workspace)
	}
	if env.Repository != "o/r" || env.OutputPath != "/tmp/out" {
		t.Errorf("Unexpected env: %+v", env)
	}
}
