package main

import (
	"fmt"
	"os"
	"strings"
)

func generateInjectFn(n int) string {
	var sb strings.Builder

	typeParams := []string{"R any"}
	for i := 1; i <= n; i++ {
		typeParams = append(typeParams, fmt.Sprintf("D%d any", i))
	}

	factoryParams := []string{}
	for i := 1; i <= n; i++ {
		factoryParams = append(factoryParams, fmt.Sprintf("D%d", i))
	}

	sb.WriteString(fmt.Sprintf("func InjectFn%d[%s](b *Binder, factory func(%s) (R, error)) *Binder {\n",
		n, strings.Join(typeParams, ", "), strings.Join(factoryParams, ", ")))
	sb.WriteString("\treqs := []Requirement{\n")
	for i := 1; i <= n; i++ {
		sb.WriteString(fmt.Sprintf("\t\tRequirementOf[D%d](),\n", i))
	}
	sb.WriteString("\t}\n")
	sb.WriteString("\tb.add(&binderEntry{\n")
	sb.WriteString("\t\tkey:      KeyOf[R](),\n")
	sb.WriteString("\t\trequires: reqs,\n")
	sb.WriteString("\t\tfactory: func(deps []any) (any, error) {\n")
	for i := 1; i <= n; i++ {
		sb.WriteString(fmt.Sprintf("\t\t\td%d, err := safeAssert[D%d](deps[%d])\n", i, i, i-1))
		sb.WriteString("\t\t\tif err != nil {\n")
		sb.WriteString("\t\t\t\treturn nil, err\n")
		sb.WriteString("\t\t\t}\n")
	}
	args := []string{}
	for i := 1; i <= n; i++ {
		args = append(args, fmt.Sprintf("d%d", i))
	}
	sb.WriteString(fmt.Sprintf("\t\t\treturn factory(%s)\n", strings.Join(args, ", ")))
	sb.WriteString("\t\t},\n")
	sb.WriteString("\t\torigin: callerOrigin(1),\n")
	sb.WriteString("\t})\n")
	sb.WriteString("\treturn b\n")
	sb.WriteString("}\n\n")

	return sb.String()
}

func generateGetTuple(n int) string {
	var sb strings.Builder

	typeParams := []string{}
	for i := 1; i <= n; i++ {
		typeParams = append(typeParams, fmt.Sprintf("T%d any", i))
	}

	results := []string{}
	for i := 1; i <= n; i++ {
		results = append(results, fmt.Sprintf("T%d", i))
	}

	sb.WriteString(fmt.Sprintf("func GetTuple%d[%s](inj *Injector) (%s, error) {\n",
		n, strings.Join(typeParams, ", "), strings.Join(results, ", ")))
	sb.WriteString("\tvar (\n")
	for i := 1; i <= n; i++ {
		sb.WriteString(fmt.Sprintf("\t\tzero%d T%d\n", i, i))
	}
	sb.WriteString("\t)\n")
	zeros := []string{}
	for i := 1; i <= n; i++ {
		zeros = append(zeros, fmt.Sprintf("zero%d", i))
	}
	for i := 1; i <= n; i++ {
		sb.WriteString(fmt.Sprintf("\tv%d, err := Get[T%d](inj)\n", i, i))
		sb.WriteString("\tif err != nil {\n")
		sb.WriteString(fmt.Sprintf("\t\treturn %s, err\n", strings.Join(zeros, ", ")))
		sb.WriteString("\t}\n")
	}
	vals := []string{}
	for i := 1; i <= n; i++ {
		vals = append(vals, fmt.Sprintf("v%d", i))
	}
	sb.WriteString(fmt.Sprintf("\treturn %s, nil\n", strings.Join(vals, ", ")))
	sb.WriteString("}\n\n")

	return sb.String()
}

func main() {
	var injectOut strings.Builder
	for i := 1; i <= 9; i++ {
		injectOut.WriteString(generateInjectFn(i))
	}

	var tupleOut strings.Builder
	for i := 2; i <= 9; i++ {
		tupleOut.WriteString(generateGetTuple(i))
	}

	fmt.Print(injectOut.String())
	fmt.Print(tupleOut.String())

	if len(os.Args) > 1 && os.Args[1] == "-w" {
		writeFile("../inject_generated.go", injectOut.String(), true)
		writeFile("../tuple_generated.go", tupleOut.String(), false)
	}
}

func writeFile(path string, body string, directive bool) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	file.WriteString("package mydi\n\n")
	if directive {
		file.WriteString("//go:generate go run codegen/main.go -w\n\n")
	}
	file.WriteString(body)
	fmt.Println("Generated", path)
}
