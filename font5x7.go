package oledterm

// font5x7 is a proportional version of the classic 5x7 column font. Each
// entry starts with the glyph width followed by that many column bytes,
// least significant bit at the top of the page.
var font5x7 = Font{
	{3, 0x00, 0x00, 0x00},             // ' '
	{1, 0x5f},                         // '!'
	{3, 0x07, 0x00, 0x07},             // '"'
	{5, 0x14, 0x7f, 0x14, 0x7f, 0x14}, // '#'
	{5, 0x24, 0x2a, 0x7f, 0x2a, 0x12}, // '$'
	{5, 0x23, 0x13, 0x08, 0x64, 0x62}, // '%'
	{5, 0x36, 0x49, 0x55, 0x22, 0x50}, // '&'
	{2, 0x05, 0x03},                   // '\''
	{3, 0x1c, 0x22, 0x41},             // '('
	{3, 0x41, 0x22, 0x1c},             // ')'
	{5, 0x08, 0x2a, 0x1c, 0x2a, 0x08}, // '*'
	{5, 0x08, 0x08, 0x3e, 0x08, 0x08}, // '+'
	{2, 0x50, 0x30},                   // ','
	{5, 0x08, 0x08, 0x08, 0x08, 0x08}, // '-'
	{2, 0x60, 0x60},                   // '.'
	{5, 0x20, 0x10, 0x08, 0x04, 0x02}, // '/'
	{5, 0x3e, 0x51, 0x49, 0x45, 0x3e}, // '0'
	{3, 0x42, 0x7f, 0x40},             // '1'
	{5, 0x42, 0x61, 0x51, 0x49, 0x46}, // '2'
	{5, 0x21, 0x41, 0x45, 0x4b, 0x31}, // '3'
	{5, 0x18, 0x14, 0x12, 0x7f, 0x10}, // '4'
	{5, 0x27, 0x45, 0x45, 0x45, 0x39}, // '5'
	{5, 0x3c, 0x4a, 0x49, 0x49, 0x30}, // '6'
	{5, 0x01, 0x71, 0x09, 0x05, 0x03}, // '7'
	{5, 0x36, 0x49, 0x49, 0x49, 0x36}, // '8'
	{5, 0x06, 0x49, 0x49, 0x29, 0x1e}, // '9'
	{2, 0x36, 0x36},                   // ':'
	{2, 0x56, 0x36},                   // ';'
	{4, 0x08, 0x14, 0x22, 0x41},       // '<'
	{5, 0x14, 0x14, 0x14, 0x14, 0x14}, // '='
	{4, 0x41, 0x22, 0x14, 0x08},       // '>'
	{5, 0x02, 0x01, 0x51, 0x09, 0x06}, // '?'
	{5, 0x32, 0x49, 0x79, 0x41, 0x3e}, // '@'
	{5, 0x7e, 0x11, 0x11, 0x11, 0x7e}, // 'A'
	{5, 0x7f, 0x49, 0x49, 0x49, 0x36}, // 'B'
	{5, 0x3e, 0x41, 0x41, 0x41, 0x22}, // 'C'
	{5, 0x7f, 0x41, 0x41, 0x22, 0x1c}, // 'D'
	{5, 0x7f, 0x49, 0x49, 0x49, 0x41}, // 'E'
	{5, 0x7f, 0x09, 0x09, 0x01, 0x01}, // 'F'
	{5, 0x3e, 0x41, 0x41, 0x51, 0x32}, // 'G'
	{5, 0x7f, 0x08, 0x08, 0x08, 0x7f}, // 'H'
	{3, 0x41, 0x7f, 0x41},             // 'I'
	{5, 0x20, 0x40, 0x41, 0x3f, 0x01}, // 'J'
	{5, 0x7f, 0x08, 0x14, 0x22, 0x41}, // 'K'
	{5, 0x7f, 0x40, 0x40, 0x40, 0x40}, // 'L'
	{5, 0x7f, 0x02, 0x04, 0x02, 0x7f}, // 'M'
	{5, 0x7f, 0x04, 0x08, 0x10, 0x7f}, // 'N'
	{5, 0x3e, 0x41, 0x41, 0x41, 0x3e}, // 'O'
	{5, 0x7f, 0x09, 0x09, 0x09, 0x06}, // 'P'
	{5, 0x3e, 0x41, 0x51, 0x21, 0x5e}, // 'Q'
	{5, 0x7f, 0x09, 0x19, 0x29, 0x46}, // 'R'
	{5, 0x46, 0x49, 0x49, 0x49, 0x31}, // 'S'
	{5, 0x01, 0x01, 0x7f, 0x01, 0x01}, // 'T'
	{5, 0x3f, 0x40, 0x40, 0x40, 0x3f}, // 'U'
	{5, 0x1f, 0x20, 0x40, 0x20, 0x1f}, // 'V'
	{5, 0x7f, 0x20, 0x18, 0x20, 0x7f}, // 'W'
	{5, 0x63, 0x14, 0x08, 0x14, 0x63}, // 'X'
	{5, 0x03, 0x04, 0x78, 0x04, 0x03}, // 'Y'
	{5, 0x61, 0x51, 0x49, 0x45, 0x43}, // 'Z'
	{3, 0x7f, 0x41, 0x41},             // '['
	{5, 0x02, 0x04, 0x08, 0x10, 0x20}, // '\\'
	{3, 0x41, 0x41, 0x7f},             // ']'
	{5, 0x04, 0x02, 0x01, 0x02, 0x04}, // '^'
	{5, 0x40, 0x40, 0x40, 0x40, 0x40}, // '_'
	{3, 0x01, 0x02, 0x04},             // '`'
	{5, 0x20, 0x54, 0x54, 0x54, 0x78}, // 'a'
	{5, 0x7f, 0x48, 0x44, 0x44, 0x38}, // 'b'
	{5, 0x38, 0x44, 0x44, 0x44, 0x20}, // 'c'
	{5, 0x38, 0x44, 0x44, 0x48, 0x7f}, // 'd'
	{5, 0x38, 0x54, 0x54, 0x54, 0x18}, // 'e'
	{5, 0x08, 0x7e, 0x09, 0x01, 0x02}, // 'f'
	{5, 0x08, 0x14, 0x54, 0x54, 0x3c}, // 'g'
	{5, 0x7f, 0x08, 0x04, 0x04, 0x78}, // 'h'
	{3, 0x44, 0x7d, 0x40},             // 'i'
	{4, 0x20, 0x40, 0x44, 0x3d},       // 'j'
	{4, 0x7f, 0x10, 0x28, 0x44},       // 'k'
	{3, 0x41, 0x7f, 0x40},             // 'l'
	{5, 0x7c, 0x04, 0x18, 0x04, 0x78}, // 'm'
	{5, 0x7c, 0x08, 0x04, 0x04, 0x78}, // 'n'
	{5, 0x38, 0x44, 0x44, 0x44, 0x38}, // 'o'
	{5, 0x7c, 0x14, 0x14, 0x14, 0x08}, // 'p'
	{5, 0x08, 0x14, 0x14, 0x18, 0x7c}, // 'q'
	{5, 0x7c, 0x08, 0x04, 0x04, 0x08}, // 'r'
	{5, 0x48, 0x54, 0x54, 0x54, 0x20}, // 's'
	{5, 0x04, 0x3f, 0x44, 0x40, 0x20}, // 't'
	{5, 0x3c, 0x40, 0x40, 0x20, 0x7c}, // 'u'
	{5, 0x1c, 0x20, 0x40, 0x20, 0x1c}, // 'v'
	{5, 0x3c, 0x40, 0x30, 0x40, 0x3c}, // 'w'
	{5, 0x44, 0x28, 0x10, 0x28, 0x44}, // 'x'
	{5, 0x0c, 0x50, 0x50, 0x50, 0x3c}, // 'y'
	{5, 0x44, 0x64, 0x54, 0x4c, 0x44}, // 'z'
	{3, 0x08, 0x36, 0x41},             // '{'
	{1, 0x7f},                         // '|'
	{3, 0x41, 0x36, 0x08},             // '}'
	{5, 0x08, 0x04, 0x08, 0x10, 0x08}, // '~'
}
