package parser_test

import (
	"testing"

	"nixlint/internal/parser"
	"nixlint/internal/source"
	"nixlint/internal/syntax"
)

func fileOf(src string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("test.nix", []byte(src)))
}

const realistic = `# generated by hand
{ lib, stdenv, fetchurl, pkgs ? import <nixpkgs> { }, ... }@args:

let
  version = "1.2.3";
  src = fetchurl {
    url = "https://example.org/foo-${version}.tar.gz";
    sha256 = "0000000000000000000000000000000000000000000000000000";
  };
  inherit (lib) optional optionals;
  /* block
     comment */
  flags = [ "--prefix=${placeholder "out"}" ] ++ optional stdenv.isLinux "--linux";
in
stdenv.mkDerivation rec {
  pname = "foo";
  inherit version src;
  buildInputs = with pkgs; [ zlib openssl ];
  postInstall = ''
    mkdir -p $out/share
    cp ${./data}/x.conf $out/share/''${pname}.conf
  '';
  doCheck = !stdenv.isDarwin && (args.check or true);
  passthru.tests = lib.optionalAttrs (pkgs ? nixosTests) { inherit (pkgs.nixosTests) foo; };
  meta = {
    homepage = https://example.org;
    license = lib.licenses.mit;
    priority = -1;
    ratio = 0.5 * 2 / 1;
  };
  f = x: y: if x > y then x - y else y -> x;
  g = builtins.map (s: "${s}/bin") [ ./a ../b ~/c ];
}
`

func TestRoundTripRealistic(t *testing.T) {
	tree := mustParse(t, realistic)
	if tree.Root().FirstDescendant(syntax.NodeLambda) == nil {
		t.Fatal("expected a lambda")
	}
	ids := 0
	syntax.Walk(tree.Root(), func(e syntax.Element) bool {
		if e.Kind() == syntax.NodeInherit {
			ids++
		}
		return true
	})
	if ids != 3 {
		t.Errorf("inherit nodes = %d, want 3", ids)
	}
}

func TestParseFileSpansCarryFileID(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("first.nix", []byte("1"))
	id := fs.AddVirtual("second.nix", []byte("a.b"))
	tree := parserParseFile(fs.Get(id))
	sel := tree.Root().FirstChild(syntax.NodeSelect)
	if sel == nil || sel.Span().File != id {
		t.Fatalf("select span file = %v, want %d", sel, id)
	}
}

func parserParseFile(f *source.File) *syntax.Tree {
	return parser.ParseFile(f, parser.Options{})
}
