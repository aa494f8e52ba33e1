package render

import (
	"fmt"
	"regexp"
	"strings"
)

// Context carries what the rewrite rules need to resolve relative targets.
// RedirectID is optional; when present, relative images resolve through the
// authenticated image path instead of the public raw host.
type Context struct {
	RepoHTMLURL string
	Branch      string
	RedirectID  string
}

// MediaRef is an image or video reference lifted out of the text during
// rendering. The markup holds a placeholder for it until ResolveMedia
// substitutes the final element.
type MediaRef struct {
	ID      int
	Alt     string
	Src     string
	IsVideo bool
}

// Result is rendered markup plus the media references still awaiting
// resolution.
type Result struct {
	Markup string
	Media  []MediaRef
}

var videoExtPattern = regexp.MustCompile(`(?i)\.(mp4|webm|ogg|mov)$`)

// rule is one step of the rewrite pipeline. Rules run in a fixed order;
// later rules assume earlier ones already transformed their matches, so the
// order is a contract, not a style choice.
type rule struct {
	name  string
	apply func(text string, st *renderState) string
}

type renderState struct {
	ctx   Context
	media []MediaRef
}

func regexRule(name, pattern, replacement string) rule {
	re := regexp.MustCompile(pattern)
	return rule{
		name: name,
		apply: func(text string, _ *renderState) string {
			return re.ReplaceAllString(text, replacement)
		},
	}
}

var (
	mediaPattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	listPattern  = regexp.MustCompile(`(?:<li class="ml-4">[^\n]*</li>\n?)+`)
)

// Header rules go most specific marker first so "###" is never half-eaten by
// the "#" rule.
var pipeline = []rule{
	regexRule("h3", `(?m)^### (.*)$`, `<h3 class="text-lg font-semibold mt-4 mb-2">$1</h3>`),
	regexRule("h2", `(?m)^## (.*)$`, `<h2 class="text-xl font-semibold mt-6 mb-3">$1</h2>`),
	regexRule("h1", `(?m)^# (.*)$`, `<h1 class="text-2xl font-bold mt-8 mb-4">$1</h1>`),
	regexRule("bold", `\*\*(.*?)\*\*`, `<strong class="font-semibold">$1</strong>`),
	regexRule("italic", `\*(.*?)\*`, `<em class="italic">$1</em>`),
	regexRule("strikethrough", `~~(.*?)~~`, `<del class="line-through">$1</del>`),
	regexRule("code-block", "```([\\s\\S]*?)```", `<pre class="bg-muted p-3 rounded border overflow-x-auto my-3"><code>$1</code></pre>`),
	regexRule("inline-code", "`(.*?)`", `<code class="bg-muted px-1 py-0.5 rounded text-sm">$1</code>`),
	{name: "media", apply: extractMedia},
	regexRule("ul-item", `(?m)^\* (.*)$`, `<li class="ml-4">$1</li>`),
	{name: "ul-collapse", apply: collapseLists},
	regexRule("ol-item", `(?m)^\d+\. (.*)$`, `<li class="ml-4">$1</li>`),
	regexRule("blockquote", `(?m)^> (.*)$`, `<blockquote class="border-l-4 border-muted pl-4 italic my-3">$1</blockquote>`),
	regexRule("hr", `(?m)^---$`, `<hr class="border-t border-muted my-4" />`),
	{name: "links", apply: rewriteLinks},
	regexRule("line-break", `\n`, `<br>`),
}

// Render runs the rewrite pipeline over markdown text. Media references come
// back as placeholders plus descriptors; callers resolve them afterwards with
// ResolveMedia and substitute the results.
func Render(markdown string, ctx Context) Result {
	st := &renderState{ctx: ctx}
	text := markdown
	for _, r := range pipeline {
		text = r.apply(text, st)
	}
	return Result{Markup: text, Media: st.media}
}

func mediaPlaceholder(id int) string {
	return fmt.Sprintf("{{media-%d}}", id)
}

func extractMedia(text string, st *renderState) string {
	return mediaPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := mediaPattern.FindStringSubmatch(match)
		ref := MediaRef{
			ID:      len(st.media),
			Alt:     groups[1],
			Src:     groups[2],
			IsVideo: videoExtPattern.MatchString(groups[2]),
		}
		st.media = append(st.media, ref)
		return mediaPlaceholder(ref.ID)
	})
}

func collapseLists(text string, _ *renderState) string {
	return listPattern.ReplaceAllString(text, `<ul class="list-disc list-inside my-2 space-y-1">$0</ul>`)
}

func rewriteLinks(text string, st *renderState) string {
	return linkPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := linkPattern.FindStringSubmatch(match)
		label, href := groups[1], groups[2]

		resolved := resolveURL(href, st.ctx)
		target := ""
		if isExternal(resolved) {
			target = ` target="_blank" rel="noopener noreferrer"`
		}
		return fmt.Sprintf(`<a href="%s" class="text-primary hover:underline"%s>%s</a>`, resolved, target, label)
	})
}

func isAbsolute(url string) bool {
	return strings.HasPrefix(url, "http://") ||
		strings.HasPrefix(url, "https://") ||
		strings.HasPrefix(url, "//")
}

func isExternal(url string) bool {
	return strings.HasPrefix(url, "http") && !strings.Contains(url, "github.com")
}

// resolveURL rewrites a relative target against the repository's raw-content
// host. The host name is substituted literally, matching how the share page
// builds raw links.
func resolveURL(url string, ctx Context) string {
	if ctx.RepoHTMLURL == "" || isAbsolute(url) {
		return url
	}
	clean := strings.TrimPrefix(url, "/")
	branch := ctx.Branch
	if branch == "" {
		branch = "main"
	}
	rawBase := strings.Replace(ctx.RepoHTMLURL, "github.com", "raw.githubusercontent.com", 1)
	return rawBase + "/" + branch + "/" + clean
}
