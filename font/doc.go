// The font subpackage parses sfnt fonts and groups the regular, bold
// and italic variants of a monospace family so bitmap providers can
// pick the right face for each cell attribute.
package font
