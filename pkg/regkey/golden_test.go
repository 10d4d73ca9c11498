package regkey

import "strings"

// Known-good keys, including names with bytes >= 0x80.
var goldenKeys = []struct {
	name     string
	features uint32
	trailer  string
	checksum uint32
	raw      string
	encoded  EncodedKey
}{
	{
		name:     "Akira Kurosawa",
		features: DefaultFeatures,
		trailer:  "0070abc5c0f0",
		checksum: 0xcb4d3b52,
		raw:      "ffffbfffff523b4dcb416b697261204b75726f736177610070abc5c0f0",
		encoded:  "<40a04a20a0d5c35dbc2df95901090b25d9f9c119d17991e7697284c448>",
	},
	{
		name:     "Hello",
		features: DefaultFeatures,
		trailer:  "0062988fc8f6",
		checksum: 0x27eecc47,
		raw:      "ffffbfffff47ccee2748656c6c6f0062988fc8f6",
		encoded:  "<40a04a20a07d2c988bbd89f979790fb16e4624b8>",
	},
	{
		name:     "aa ab",
		features: DefaultFeatures,
		trailer:  "0023badcc0ff",
		checksum: 0xa95fabf1,
		raw:      "ffffbffffff1ab5fa961612061620023badcc0ff",
		encoded:  "<40a04a20a010ca15fa29a9cbc9c90f332a8c3428>",
	},
	{
		name:     strings.Repeat("x", 63),
		features: 0x00000001,
		trailer:  "00888078c8f8",
		checksum: 0xe3a643e8,
		raw: "ff01000000e843a6e3" +
			strings.Repeat("78", 63) +
			"00888078c8f8",
		encoded: "<40dfb7df5f88dd8aa8b131d1519111e969a929c9498909f979b939d9599919" +
			"e5a545adc5458505f575b535d5559515ed6dad2dcd4d8d0dfd7dbd3ddd5d9d1de3a343abc3438303f36dbc2cd35e92>",
	},
	{
		name:     "Émile Zola",
		features: 0x12345678,
		trailer:  "0022f4fcc8fa",
		checksum: 0x8d23927d,
		raw:      "ff785634127d92238dc3896d696c65205a6f6c610022f4fcc8fa",
		encoded:  "<4041ddf31721562bde6cbe79d9b9a9f32d41015157d338d874f8>",
	},
	{
		name:     "\x80\x81\xfe\x7f\x90",
		features: 0x80000000,
		trailer:  "00e010cfc0f4",
		checksum: 0x28d445c6,
		raw:      "ff00000080c645d4288081fe7f9000e010cfc0f4",
		encoded:  "<405fb7df5efcbdc47baeaeb0b1860ff07f4434f8>",
	},
	{
		name:     "\xff\xfe\x03\x02\x7f",
		features: 0,
		trailer:  "00df2f52c8f9",
		checksum: 0x2fc5026c,
		raw:      "ff000000006c02c52ffffe03027f00df2f52c8f9",
		encoded:  "<405fb7df5fa95f4c9b50500f0f710f0c83fd2448>",
	},
	{
		name:     "\x80\x80\x7f\x80\x80",
		features: 0xffffffff,
		trailer:  "00ff00f0c8f1",
		checksum: 0x768ed986,
		raw:      "ffffffffff86d98e7680807f808000ff00f0c8f1",
		encoded:  "<40a04820a0fe849e01ae2e314e8e0f0877b82458>",
	},
}
