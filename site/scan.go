package site

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/moby/patternmatcher"
	"github.com/sirupsen/logrus"

	"github.com/loamtools/loam/config"
	"github.com/loamtools/loam/errors"
	"github.com/loamtools/loam/util/slug"
)

// ScanOptions controls content discovery.
type ScanOptions struct {
	// IgnorePatterns are glob patterns (relative to the content dir)
	// for files to skip.
	IgnorePatterns []string
	// IncludeDrafts includes posts marked draft: true.
	IncludeDrafts bool
	// Logger receives per-file warnings. Nil disables logging.
	Logger *logrus.Entry
}

// OptionsFromConfig derives scan options from the content section of loam.yml.
func OptionsFromConfig(cfg *config.Config, logger *logrus.Entry) ScanOptions {
	return ScanOptions{
		IgnorePatterns: cfg.Content.IgnorePatterns,
		IncludeDrafts:  cfg.Content.IncludeDrafts,
		Logger:         logger,
	}
}

// Scan walks the content directory and returns all discovered posts,
// sorted by date (newest first) then slug. A post with malformed
// frontmatter is kept with fallback metadata rather than aborting the
// scan; only an unreadable directory is an error.
func Scan(dir string, opts ScanOptions) ([]Post, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, errors.ContentDirNotFound(dir)
	}

	var matcher *patternmatcher.PatternMatcher
	if len(opts.IgnorePatterns) > 0 {
		matcher, err = patternmatcher.New(opts.IgnorePatterns)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid ignore patterns")
		}
	}

	var posts []Post
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = d.Name()
		}
		if matcher != nil {
			matched, err := matcher.MatchesOrParentMatches(filepath.ToSlash(rel))
			if err == nil && matched {
				return nil
			}
		}

		post, err := loadPost(path)
		if err != nil {
			// Unreadable file: skip it, keep the rest of the site.
			if opts.Logger != nil {
				opts.Logger.WithError(err).WithField("path", path).Warn("Skipping unreadable post")
			}
			return nil
		}
		if !post.MetaValid && opts.Logger != nil {
			opts.Logger.WithField("path", path).Warn("Malformed frontmatter, using fallback metadata")
		}
		if post.Meta.Draft && !opts.IncludeDrafts {
			return nil
		}

		posts = append(posts, post)
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrap(walkErr, errors.ErrCodeInternal, "content scan failed").
			WithDetail("dir", dir)
	}

	sortPosts(posts)
	return posts, nil
}

func loadPost(path string) (Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Post{}, errors.PostInvalid(path, err)
	}

	postSlug := slug.FromFilename(filepath.Base(path))
	post := Post{
		Slug:      postSlug,
		Path:      path,
		MetaValid: true,
	}

	meta, body, err := ParseFrontmatter(string(data))
	post.Body = body
	if err != nil {
		// The slug stands in for the title so the post still renders.
		post.MetaValid = false
		post.Meta = PostMeta{Title: postSlug}
		return post, nil
	}

	post.Meta = meta
	if post.Meta.Title == "" {
		post.Meta.Title = postSlug
	}
	return post, nil
}

// sortPosts orders posts newest first; posts without a date sort after
// dated ones, alphabetically by slug. The order must be deterministic
// because it drives the derived navigation.
func sortPosts(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		di, dj := posts[i].Meta.Date, posts[j].Meta.Date
		if di.IsZero() != dj.IsZero() {
			return !di.IsZero()
		}
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return posts[i].Slug < posts[j].Slug
	})
}
