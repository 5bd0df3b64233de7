// Package starnavi is a file browser that draws a directory tree as a
// spinning galaxy on [Ebitengine].
//
// Every file is a star. Stars are grouped into sectors, wedges of the galaxy
// disc, by one of several clustering modes: the subdirectory a file lives
// in, a shared name prefix, or its tags. Clicking a sector drills into it,
// clicking a star opens the file with its handler.
//
// # Quick start
//
// [Run] opens a window over a [History] rooted at a directory galaxy:
//
//	tree, _ := fstree.Scan(ctx, "/home/me/photos", fstree.ScanOptions{})
//	root := starnavi.NewDirGalaxy(tree.Root(), starnavi.ClusterHierarchy, starnavi.Options{})
//	h := starnavi.NewHistory(root, starnavi.Options{})
//	defer h.Close()
//	starnavi.Run(h, starnavi.RunConfig{Title: "photos"})
//
// For full control, drive a [Viewer] from your own [ebiten.Game], or call
// [Renderer.Draw] with any [Galaxy].
//
// # Galaxies
//
// A [Galaxy] owns its sectors and a sector owns its stars. The galaxy
// radius grows with the number of files, sector arcs are proportional to
// their file counts, and the balancer widens sectors too thin to fit their
// label. Galaxy-local coordinates are Y up with angles counter-clockwise
// from the positive X axis; [Galaxy.ScreenToGalaxy] and
// [Galaxy.GalaxyToScreen] convert to and from window pixels.
//
// # Navigation
//
// [History] is a browser-style back/forward list. [History.Activate] acts on
// the pointer selection made by [History.IsColliding]: a sector pushes a new
// galaxy, a star in a single-sector galaxy (or in star selection mode) is
// handed to the [Launcher]. Pushing truncates the forward entries and
// closes their galaxies.
//
// # Tags
//
// Tags are read from sidecar files next to each file (see package fstree).
// [History.SetTagFilter] builds a tags galaxy of the files matching any of
// the given tags. When a [fstree.Watcher] is passed to [Run], edits to
// sidecars reload the affected files' tags while the window is open.
//
// [Ebitengine]: https://ebitengine.org
package starnavi
