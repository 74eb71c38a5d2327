package avltree

import (
	"fmt"
	"io"
)

type nodeids[K, S any] struct {
	idTable map[*Node[K, S]]int
	max     int
}

func newtable[K, S any]() nodeids[K, S] {
	return nodeids[K, S]{
		idTable: make(map[*Node[K, S]]int),
		max:     1,
	}
}

func (ids nodeids[K, S]) find(node *Node[K, S]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K, S]) alloc(node *Node[K, S]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Keys and summaries are formatted with %v.
func ToDot[K, S any](t *Tree[K, S], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K, S]()
	nodelist, edgelist := "", ""
	var walk func(node *Node[K, S])
	walk = func(node *Node[K, S]) {
		ID := ids.alloc(node)
		isleaf := node.children[Left] == nil && node.children[Right] == nil
		styles := nodeDotStyles(isleaf)
		label := fmt.Sprintf("%v\\nh=%d", node.key, node.height)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
		for d := Left; d <= Right; d++ {
			if child := node.children[d]; child != nil {
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
				walk(child)
			} else if !isleaf {
				nilid := ID*2 + 10000 + int(d)
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
			}
		}
	}
	if t.Root() != nil {
		walk(t.Root())
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point,fixedsize=true,width=.1]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
