package build

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.home.luguber.info/inful/bloggen/internal/content"
)

func page(path, html string) Page {
	return Page{Doc: &content.Document{Slug: path}, Path: path, HTML: html}
}

func TestVerifyInternalLinks(t *testing.T) {
	pages := []Page{
		page("index.html", `<a href="/a-study/">ok</a> <a href="/nope/">broken</a>`),
		page("a-study/index.html", `<img src="/img/cover.png"> <a href="https://example.com/x">external</a>`),
	}
	assets := []string{"img/cover.png"}

	warnings := verifyInternalLinks(pages, assets, false)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "/nope/")
	assert.Contains(t, warnings[0], "index.html")
}

func TestVerifyInternalLinks_SkipsNonInternalRefs(t *testing.T) {
	pages := []Page{
		page("index.html", `<a href="#section">a</a>
			<a href="mailto:x@example.com">b</a>
			<a href="//cdn.example.com/lib.js">c</a>
			<a href="relative/page.html">d</a>
			<a href="">e</a>`),
	}
	assert.Empty(t, verifyInternalLinks(pages, nil, false))
}

func TestVerifyInternalLinks_StripsFragmentAndQuery(t *testing.T) {
	pages := []Page{
		page("index.html", `<a href="/a-study/#heading">x</a> <a href="/a-study/?ref=home">y</a>`),
		page("a-study/index.html", ``),
	}
	assert.Empty(t, verifyInternalLinks(pages, nil, false))
}

func TestVerifyInternalLinks_AtomFeed(t *testing.T) {
	pages := []Page{page("index.html", `<a href="/atom.xml">feed</a>`)}

	assert.Empty(t, verifyInternalLinks(pages, nil, true))
	assert.Len(t, verifyInternalLinks(pages, nil, false), 1)
}
