// cellatlas draws fixed-width ASCII terminal cells with Ebitengine,
// caching one set of glyph textures per (character, attributes) pair
// and batching each frame's contents into a single draw pass.
//
// First, you create a [Renderer] and give it a cell geometry and a
// bitmap provider:
//   provider := raster.NewFaceProvider(nil, image.Pt(7, 13))
//   renderer := cellatlas.NewRenderer()
//   renderer.SetCellGeometry(provider.CellSize(), provider.Token(), provider.Provide)
//
// Then, on each frame, you get a frame state, fill it and draw it:
//   state := renderer.NewFrame()
//   for _, row := range screenRows { state.AppendRow(row) }
//   err := renderer.Draw(screen, 0, 0, state)
//
// Glyph textures are created lazily, the first time a cell needs
// them. Use [Renderer.Prefill]() at load time to avoid rasterizing
// in the middle of a frame. Whenever the font, size or scale change,
// pass a new token to [Renderer.SetCellGeometry]() and the cache
// will be rebuilt from scratch.
//
// Building with the nogpu tag replaces Ebitengine images with
// [image.Image] textures and [golang.org/x/image/draw.Image] targets.
package cellatlas
