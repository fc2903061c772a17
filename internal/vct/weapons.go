package vct

// weaponNames maps finishing-damage item UUIDs to display names. The table
// is fixed; some weapons appear under multiple UUIDs across data sources.
var weaponNames = map[string]string{
	// Assault rifles
	"E336C6B8-418D-9340-D77F-7A9E4CFE0702": "Vandal",
	"9C82E19D-4575-0200-1A81-3EACF00CF872": "Vandal",
	"1BAA85B4-4C70-1284-64BB-6481DFC3BB4E": "Vandal",
	"EE8E8D15-496B-07AC-E5F6-8FAE5D4C7B1A": "Phantom",
	"AE3DE142-4D85-2547-DD26-4E90BED35CF7": "Phantom",
	"C4883E50-4494-202C-3EC3-6B8A9284F00B": "Bulldog",
	"AE3DE142-4D85-2547-DD26-4E90BED35A7B": "Guardian",

	// Snipers
	"A03B24D3-4319-996D-0F8C-94BBFBA1DFC7": "Operator",
	"4ECE3B7E-4BC3-8EB9-E9AD-6DB6EF4D3F9C": "Operator",
	"C14908BC-4EF5-ACB9-7B8E-421BD7B8CB6C": "Marshal",

	// SMGs
	"F7E1B454-4AD4-1063-EC0A-159E56B58941": "Stinger",
	"462080D1-4035-2937-7C09-27AA2A5C27A7": "Spectre",

	// Shotguns
	"910BE174-449B-C412-AB22-D0873436B21B": "Bucky",
	"EC845BF4-4F79-DDDA-A3DA-0DB3774B2794": "Judge",

	// LMGs
	"63E6C2B6-4A8E-869C-3D4C-E38355226584": "Ares",
	"4EBC1E9F-4EE7-2E0F-F6A6-4E56F38044C2": "Odin",

	// Pistols
	"29A0CFAB-485B-F5D5-779A-B59F85E204A8": "Classic",
	"42DA8CCC-40D5-AFFC-BEEC-15AA47B42EDA": "Shorty",
	"44D4E95C-4157-0037-81B2-17841BF2E8E3": "Frenzy",
	"E370FA57-4757-3604-3648-499A3F21CC59": "Sheriff",

	// Melee and abilities
	"2F59173C-4BED-B6C3-2191-DEA9B58E9CF7": "Knife",
	"5F0AAF7A-4289-3998-D5FF-EB9A5CF7EF5C": "Melee",
	"4ADE7FAA-4CF1-8376-95EF-39884480959B": "Ability",
}

// WeaponName resolves a damage-item UUID to a weapon display name. Unknown
// UUIDs are not an error; a kill record is valid without a resolvable weapon.
func WeaponName(id string) (string, bool) {
	name, ok := weaponNames[id]
	return name, ok
}
