package constants

// Arrow indicator artwork, rasterised by the SDL backend. The fill is white so
// the renderer can tint and dim it with color and alpha modulation.
const (
	ArrowUpSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">` +
		`<path fill="#FFFFFF" d="M12 6 L20 16 L4 16 Z"/></svg>`
	ArrowDownSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">` +
		`<path fill="#FFFFFF" d="M12 18 L4 8 L20 8 Z"/></svg>`
)
