// Package pages holds the fixed set of routes navdeck can display and the
// pipeline that turns their authored HTML into styled terminal text.
package pages

// Routes is the fixed, ordered set of navigable targets shown in the
// navigation deck.
var Routes = []string{
	"/",
	"/guide",
	"/stack",
	"/storage",
	"/themes",
	"/about",
}

// documents maps each route to its authored HTML source.
var documents = map[string]string{
	"/": `<html><head><title>navdeck</title></head><body><article>
<h1>navdeck</h1>
<p>Welcome to <strong>navdeck</strong>, a tiny single-page app for the
terminal. It exists to demonstrate one thing done carefully: a navigation
history stack that records every route you visit, lets you step backward,
and persists each entry so the trail survives a restart.</p>
<p>Pick a destination from the deck on the left and press enter. Every
navigation mints a new integer key, pushes it onto the back stack, and
writes a snapshot of the whole application state to disk. Press the back
key and the stack pops, the popped key slides onto the forward list, and
the persisted snapshot for that entry is read back in.</p>
<ul>
<li>Read the <a href="/guide">guide</a> for the keys that drive the app.</li>
<li>See <a href="/stack">the stack</a> for how entries move around.</li>
<li>See <a href="/storage">storage</a> for where snapshots live.</li>
</ul>
<p>Toggle the debug panel at any time to watch the raw stack mutate as
you move. That panel is the whole point of the exercise.</p>
</article></body></html>`,

	"/guide": `<html><head><title>Guide</title></head><body><article>
<h1>Guide</h1>
<p>navdeck is driven entirely from the keyboard. The deck of route
buttons sits on the left; the page you navigated to fills the rest of
the screen.</p>
<h2>Moving around</h2>
<ul>
<li><code>j</code> / <code>k</code> move the deck cursor.</li>
<li><code>enter</code> navigates to the selected route.</li>
<li><code>1</code> through <code>6</code> jump straight to a route.</li>
<li><code>H</code> or <code>backspace</code> goes back one entry.</li>
<li><code>d</code> toggles the raw stack debug panel.</li>
<li><code>T</code> cycles the color theme.</li>
<li><code>q</code> quits.</li>
</ul>
<h2>What a navigation does</h2>
<p>Each navigation is two things at once: a synchronous update of the
in-memory stack, and an asynchronous write of the resulting snapshot to
the store. The update never waits for the write; a failed write is
logged and otherwise ignored.</p>
<blockquote>Going back works the same way, except the asynchronous half
is a read, and its result replaces the locally computed stack when it
arrives.</blockquote>
</article></body></html>`,

	"/stack": `<html><head><title>The stack</title></head><body><article>
<h1>The stack</h1>
<p>The history stack is four fields and two transitions. Keys are
integers minted in visit order, starting at zero, never reused.</p>
<table>
<thead><tr><th>Field</th><th>Holds</th></tr></thead>
<tbody>
<tr><td>back</td><td>keys reachable by going backward, newest first</td></tr>
<tr><td>current</td><td>the key of the entry on screen</td></tr>
<tr><td>history</td><td>every key ever pushed, newest first</td></tr>
<tr><td>next</td><td>keys reachable by going forward</td></tr>
</tbody>
</table>
<h2>Push</h2>
<p>A push mints <code>key = len(history)</code>, prepends it to both the
back list and the history log, makes it current, and clears the forward
list. New navigation always invalidates forward history, exactly like a
browser.</p>
<h2>Pop</h2>
<p>A pop takes the head of the back list, moves it to the front of the
forward list, and promotes the new head of the back list to current.
Popping an empty stack clamps to key zero instead of failing, so mashing
the back key at the origin is harmless.</p>
<p>The <a href="/storage">storage page</a> covers what happens to the
popped key after that.</p>
</article></body></html>`,

	"/storage": `<html><head><title>Storage</title></head><body><article>
<h1>Storage</h1>
<p>Every navigation entry is persisted as an opaque snapshot: the full
application state, serialized and written under the entry's integer key.
The store is deliberately dumb. It knows two operations:</p>
<ol>
<li><code>set(key, state, skipCache)</code> writes a snapshot.</li>
<li><code>get(key, default, skipCache)</code> reads one back, returning
the caller's default when the key has never been written.</li>
</ol>
<p>Snapshots land in a SQLite database in your data directory, with a
small in-memory cache in front of it. The <code>skipCache</code> flag
exists for callers that need to see exactly what is on disk.</p>
<h2>Reconciliation</h2>
<p>When you go back, the app computes the new stack immediately and
shows it, then issues a read for the popped key. When the read resolves,
whatever stack the store returns wins over the locally computed one.
Watch the debug panel while going back and you can sometimes catch the
local snapshot in the instant before the stored one lands.</p>
</article></body></html>`,

	"/themes": `<html><head><title>Themes</title></head><body><article>
<h1>Themes</h1>
<p>navdeck ships a handful of color themes. Press <code>T</code> to
cycle through them, or set one permanently with the <code>-theme</code>
flag or the <code>theme</code> field in the config file.</p>
<p>Cycling the theme is the one state change that deliberately does
<em>not</em> record a history entry. The route is revised in place: the
stack passes through untouched and no storage operation is issued. If
theme changes were pushed, going back would replay your color choices,
which nobody wants.</p>
<ul>
<li><code>default</code> - violet and cyan on slate</li>
<li><code>gruvbox</code> - warm retro</li>
<li><code>nord</code> - cool and muted</li>
<li><code>dracula</code> - high-contrast purple</li>
</ul>
</article></body></html>`,

	"/about": `<html><head><title>About</title></head><body><article>
<h1>About</h1>
<p>navdeck is a demonstration, not a product. The interesting part is
under a hundred lines: a bidirectional stack of integer keys with an
append-only log, reconciled against an asynchronous key/value store.
Everything else on screen is glue.</p>
<p>The pages you are reading are authored as HTML, run through a
readability pass, converted to markdown, and rendered for the terminal.
That pipeline exists so the demo feels like the single-page browser app
it imitates rather than a pile of hardcoded strings.</p>
<hr>
<p>Start over at <a href="/">home</a>, or open the debug panel and go
spelunking through the stack you have built up reading this.</p>
</article></body></html>`,
}

// Lookup returns the authored HTML for a route. The second result is
// false for routes outside the fixed set.
func Lookup(route string) (string, bool) {
	doc, ok := documents[route]
	return doc, ok
}
