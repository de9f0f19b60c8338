package gfx

// Statistics captures the counts generated since the last Present.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	LineCount    int
	TextureBinds int
}

// LiveResources reports objects the renderer currently owns.
type LiveResources struct {
	Textures int
	Owned    int // fonts and other registered resources
}
