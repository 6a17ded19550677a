//go:build unix
// +build unix

package utils

import (
	"testing"
)

func TestSourceDir(t *testing.T) {
	cases := []struct {
		file string
		want string
	}{
		{
			file: "/Users/name/go/pkg/mod/github.com/rossipedia/!forgery@v1.2.3/utils/utils.go",
			want: "/Users/name/go/pkg/mod/github.com/rossipedia/",
		},
		{
			file: "/go/work/proj/forgery/utils/utils.go",
			want: "/go/work/proj/forgery/",
		},
		{
			file: "/go/work/proj/forgery_alias/utils/utils.go",
			want: "/go/work/proj/forgery_alias/",
		},
	}
	for _, c := range cases {
		s := sourceDir(c.file)
		if s != c.want {
			t.Fatalf("%s: expected %s, got %s", c.file, c.want, s)
		}
	}
}
